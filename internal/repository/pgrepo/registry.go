package pgrepo

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

// NewUnitOfWork создает UnitOfWork поверх пула и регистрирует в нем все postgres репозитории.
func NewUnitOfWork(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{repoargs.SaleRepoName, func(dbtx uow.DBTX) uow.Repository { return NewSaleRepository(dbtx) }},
		{repoargs.ProductRepoName, func(dbtx uow.DBTX) uow.Repository { return NewProductRepository(dbtx) }},
		{repoargs.WalletRepoName, func(dbtx uow.DBTX) uow.Repository { return NewWalletRepository(dbtx) }},
		{
			repoargs.WalletRechargeRepoName,
			func(dbtx uow.DBTX) uow.Repository { return NewWalletRechargeRepository(dbtx) },
		},
		{
			repoargs.WalletTransactionRepoName,
			func(dbtx uow.DBTX) uow.Repository { return NewWalletTransactionRepository(dbtx) },
		},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
