package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale заказ покупателя. PaymentID пустой до первой привязки к платежу.
type Sale struct {
	ID                  int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	PaymentID           string
	PaymentStatus       PaymentStatusType
	PaymentStatusDetail string
	PaymentMethodID     string
	Items               []SaleItem
}

// SaleItem позиция заказа.
type SaleItem struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

type Product struct {
	ID         int64
	UpdatedAt  time.Time
	Variations []Variation
}

// Variation складская единица товара (размер/артикул). Хранится внутри товара в виде jsonb массива.
// Ключи, которыми сервис не управляет (цена, цвет, изображения), лежат в Extra и сохраняются без изменений.
type Variation struct {
	Size      string                     `json:"size"`
	SKU       string                     `json:"sku"`
	Quantity  int                        `json:"quantity"`
	Available bool                       `json:"available"`
	Extra     map[string]json.RawMessage `json:"-"`
}

type Wallet struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	OwnerID   string
	Balance   decimal.Decimal
}

// WalletRecharge заявка на пополнение кошелька.
type WalletRecharge struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	WalletID   int64
	Amount     decimal.Decimal
	PaymentID  string
	Status     RechargeStatusType
	ApprovedAt *time.Time
}

// WalletTransaction запись журнала операций кошелька. Записи только добавляются.
type WalletTransaction struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	WalletID    int64
	RechargeID  int64
	Kind        TransactionKindType
	Amount      decimal.Decimal
	Description string
}
