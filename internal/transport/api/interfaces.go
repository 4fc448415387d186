package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-payhook/internal/service"
)

type PaymentReconciler interface {
	Reconcile(ctx context.Context, paymentID string) (*service.ReconcileResult, error)
}
