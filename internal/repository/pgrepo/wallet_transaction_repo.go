package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type WalletTransactionRepository struct {
	conn uow.DBTX
}

func NewWalletTransactionRepository(conn uow.DBTX) *WalletTransactionRepository {
	return &WalletTransactionRepository{conn: conn}
}

// Create добавляет запись в журнал кошелька. Вторая запись того же вида для одной заявки на пополнение
// отклоняется уникальным индексом (ErrDuplicateKey).
func (r *WalletTransactionRepository) Create(
	ctx context.Context,
	args repoargs.WalletTransactionCreate,
) (*domain.WalletTransaction, error) {
	t := domain.WalletTransaction{
		ID:          args.ID,
		WalletID:    args.WalletID,
		RechargeID:  args.RechargeID,
		Kind:        args.Kind,
		Amount:      args.Amount,
		Description: args.Description,
	}
	err := r.conn.QueryRow(ctx,
		`INSERT INTO wallet_transactions (id, wallet_id, recharge_id, kind, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		args.ID, args.WalletID, args.RechargeID, string(args.Kind), args.Amount, args.Description,
	).Scan(&t.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating wallet transaction for recharge %d", args.RechargeID)
	}
	return &t, nil
}
