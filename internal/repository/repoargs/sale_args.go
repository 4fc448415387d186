package repoargs

import "github.com/fsdevblog/groph-payhook/internal/domain"

// SalePaymentStatusUpdate обновление статуса оплаты. Запись изменится только если текущий статус равен From.
type SalePaymentStatusUpdate struct {
	ID              int64
	From            domain.PaymentStatusType
	To              domain.PaymentStatusType
	StatusDetail    string
	PaymentMethodID string
}
