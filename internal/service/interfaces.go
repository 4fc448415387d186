package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type SaleRepository interface {
	LockByPaymentID(ctx context.Context, paymentID string) (*domain.Sale, error)
	LockUnlinkedByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	AttachPayment(ctx context.Context, saleID int64, paymentID string) error
	UpdatePaymentStatus(ctx context.Context, args repoargs.SalePaymentStatusUpdate) (bool, error)
}

type ProductRepository interface {
	LockByID(ctx context.Context, productID int64) (*domain.Product, error)
	SaveVariations(ctx context.Context, productID int64, variations []domain.Variation) error
}

type WalletRepository interface {
	Credit(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error)
}

type WalletRechargeRepository interface {
	LockByPaymentID(ctx context.Context, paymentID string) (*domain.WalletRecharge, error)
	LockLatestPending(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.WalletRecharge, error)
	AttachPayment(ctx context.Context, rechargeID int64, paymentID string) error
	UpdateStatus(ctx context.Context, args repoargs.RechargeStatusUpdate) (bool, error)
}

type WalletTransactionRepository interface {
	Create(ctx context.Context, args repoargs.WalletTransactionCreate) (*domain.WalletTransaction, error)
}
