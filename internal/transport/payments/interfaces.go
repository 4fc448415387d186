package payments

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-payhook/internal/transport/payments/client"
)

type Client interface {
	GetPayment(ctx context.Context, paymentID string) (*client.Payment, error)
}
