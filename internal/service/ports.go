package service

import "context"

//go:generate mockgen -source=ports.go -destination=portmocks/mocks.go -package=portmocks

// PaymentFetcher источник актуального состояния платежа у провайдера.
type PaymentFetcher interface {
	FetchPayment(ctx context.Context, paymentID string) (*PaymentDetails, error)
}

type SalePaymentApplier interface {
	ApplyPayment(ctx context.Context, args ApplySalePaymentArgs) (*SaleReconciliation, error)
}

type RechargePaymentApplier interface {
	ApplyPayment(ctx context.Context, args ApplyRechargePaymentArgs) (*RechargeReconciliation, error)
}
