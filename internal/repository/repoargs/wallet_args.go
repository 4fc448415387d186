package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-payhook/internal/domain"
)

// RechargeStatusUpdate переход статуса пополнения. Применяется только если текущий статус равен From.
type RechargeStatusUpdate struct {
	ID         int64
	From       domain.RechargeStatusType
	To         domain.RechargeStatusType
	ApprovedAt *time.Time
}

type WalletTransactionCreate struct {
	ID          uuid.UUID
	WalletID    int64
	RechargeID  int64
	Kind        domain.TransactionKindType
	Amount      decimal.Decimal
	Description string
}
