package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

const saleColumns = `id, created_at, updated_at, payment_id, payment_status, payment_status_detail, payment_method_id`

type SaleRepository struct {
	conn uow.DBTX
}

func NewSaleRepository(conn uow.DBTX) *SaleRepository {
	return &SaleRepository{conn: conn}
}

// LockByPaymentID находит заказ по идентификатору платежа и блокирует строку до конца транзакции.
func (r *SaleRepository) LockByPaymentID(ctx context.Context, paymentID string) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE payment_id = $1 FOR UPDATE`,
		paymentID,
	)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "locking sale by payment id `%s`", paymentID)
	}
	return r.withItems(ctx, sale)
}

// LockUnlinkedByID блокирует заказ, еще не привязанный ни к одному платежу.
func (r *SaleRepository) LockUnlinkedByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1 AND payment_id IS NULL FOR UPDATE`,
		saleID,
	)
	sale, err := scanSale(row)
	if err != nil {
		return nil, convertErr(err, "locking unlinked sale with id %d", saleID)
	}
	return r.withItems(ctx, sale)
}

// AttachPayment привязывает платеж к заказу. Уникальный индекс по payment_id не даст привязать
// один платеж к двум заказам (ErrDuplicateKey).
func (r *SaleRepository) AttachPayment(ctx context.Context, saleID int64, paymentID string) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE sales SET payment_id = $2, updated_at = now() WHERE id = $1 AND payment_id IS NULL`,
		saleID, paymentID,
	)
	if err != nil {
		return convertErr(err, "attaching payment `%s` to sale %d", paymentID, saleID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "attaching payment `%s` to sale %d", paymentID, saleID)
	}
	return nil
}

// UpdatePaymentStatus меняет статус оплаты, только если текущий статус равен args.From.
// Возвращает false, если статус уже был изменен кем-то другим.
func (r *SaleRepository) UpdatePaymentStatus(ctx context.Context, args repoargs.SalePaymentStatusUpdate) (bool, error) {
	tag, err := r.conn.Exec(ctx,
		`UPDATE sales
		SET payment_status = $3, payment_status_detail = $4, payment_method_id = $5, updated_at = now()
		WHERE id = $1 AND payment_status = $2`,
		args.ID, string(args.From), string(args.To), args.StatusDetail, args.PaymentMethodID,
	)
	if err != nil {
		return false, convertErr(err, "updating payment status of sale %d", args.ID)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SaleRepository) withItems(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	rows, qErr := r.conn.Query(ctx,
		`SELECT product_id, size, sku, quantity FROM sale_items WHERE sale_id = $1 ORDER BY id`,
		sale.ID,
	)
	if qErr != nil {
		return nil, convertErr(qErr, "getting items of sale %d", sale.ID)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SaleItem, error) {
		var item domain.SaleItem
		scanErr := row.Scan(&item.ProductID, &item.Size, &item.SKU, &item.Quantity)
		return item, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning items of sale %d", sale.ID)
	}
	sale.Items = items
	return sale, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var (
		sale      domain.Sale
		paymentID *string
		status    string
	)
	if err := row.Scan(
		&sale.ID,
		&sale.CreatedAt,
		&sale.UpdatedAt,
		&paymentID,
		&status,
		&sale.PaymentStatusDetail,
		&sale.PaymentMethodID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if paymentID != nil {
		sale.PaymentID = *paymentID
	}
	sale.PaymentStatus = domain.PaymentStatusType(status)
	return &sale, nil
}
