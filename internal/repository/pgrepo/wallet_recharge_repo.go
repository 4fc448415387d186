package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

const rechargeColumns = `id, created_at, updated_at, wallet_id, amount, payment_id, status, approved_at`

type WalletRechargeRepository struct {
	conn uow.DBTX
}

func NewWalletRechargeRepository(conn uow.DBTX) *WalletRechargeRepository {
	return &WalletRechargeRepository{conn: conn}
}

func (r *WalletRechargeRepository) LockByPaymentID(ctx context.Context, paymentID string) (*domain.WalletRecharge, error) {
	recharge, err := scanRecharge(r.conn.QueryRow(ctx,
		`SELECT `+rechargeColumns+` FROM wallet_recharges WHERE payment_id = $1 FOR UPDATE`,
		paymentID,
	))
	if err != nil {
		return nil, convertErr(err, "locking recharge by payment id `%s`", paymentID)
	}
	return recharge, nil
}

// LockLatestPending находит самую свежую заявку в статусе pending без привязанного платежа с точным
// совпадением суммы. Строки, заблокированные параллельной транзакцией, пропускаются.
func (r *WalletRechargeRepository) LockLatestPending(
	ctx context.Context,
	walletID int64,
	amount decimal.Decimal,
) (*domain.WalletRecharge, error) {
	recharge, err := scanRecharge(r.conn.QueryRow(ctx,
		`SELECT `+rechargeColumns+` FROM wallet_recharges
		WHERE wallet_id = $1 AND amount = $2 AND status = 'pending' AND payment_id IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT 1
		FOR UPDATE SKIP LOCKED`,
		walletID, amount,
	))
	if err != nil {
		return nil, convertErr(err, "locking pending recharge of wallet %d for amount %s", walletID, amount.String())
	}
	return recharge, nil
}

func (r *WalletRechargeRepository) AttachPayment(ctx context.Context, rechargeID int64, paymentID string) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE wallet_recharges SET payment_id = $2, updated_at = now() WHERE id = $1 AND payment_id IS NULL`,
		rechargeID, paymentID,
	)
	if err != nil {
		return convertErr(err, "attaching payment `%s` to recharge %d", paymentID, rechargeID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "attaching payment `%s` to recharge %d", paymentID, rechargeID)
	}
	return nil
}

// UpdateStatus переводит заявку в новый статус, если текущий равен args.From.
func (r *WalletRechargeRepository) UpdateStatus(ctx context.Context, args repoargs.RechargeStatusUpdate) (bool, error) {
	tag, err := r.conn.Exec(ctx,
		`UPDATE wallet_recharges
		SET status = $3, approved_at = COALESCE($4, approved_at), updated_at = now()
		WHERE id = $1 AND status = $2`,
		args.ID, string(args.From), string(args.To), args.ApprovedAt,
	)
	if err != nil {
		return false, convertErr(err, "updating status of recharge %d", args.ID)
	}
	return tag.RowsAffected() == 1, nil
}

func scanRecharge(row pgx.Row) (*domain.WalletRecharge, error) {
	var (
		recharge  domain.WalletRecharge
		paymentID *string
		status    string
	)
	if err := row.Scan(
		&recharge.ID,
		&recharge.CreatedAt,
		&recharge.UpdatedAt,
		&recharge.WalletID,
		&recharge.Amount,
		&paymentID,
		&status,
		&recharge.ApprovedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if paymentID != nil {
		recharge.PaymentID = *paymentID
	}
	recharge.Status = domain.RechargeStatusType(status)
	return &recharge, nil
}
