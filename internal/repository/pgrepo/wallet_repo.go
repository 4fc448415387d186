package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

// Credit увеличивает баланс кошелька одним UPDATE и возвращает кошелек с новым балансом.
func (r *WalletRepository) Credit(ctx context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.conn.QueryRow(ctx,
		`UPDATE wallets SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING id, created_at, updated_at, owner_id, balance`,
		walletID, amount,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.OwnerID, &w.Balance)
	if err != nil {
		return nil, convertErr(err, "crediting wallet %d with %s", walletID, amount.String())
	}
	return &w, nil
}
