package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

// LockByID читает товар вместе с вариациями и блокирует строку до конца транзакции.
// Пока блокировка держится, параллельные списания по этому товару ждут.
func (r *ProductRepository) LockByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(ctx,
		`SELECT id, updated_at, variations FROM products WHERE id = $1 FOR UPDATE`,
		productID,
	).Scan(&product.ID, &product.UpdatedAt, &product.Variations)
	if err != nil {
		return nil, convertErr(err, "locking product %d", productID)
	}
	return &product, nil
}

// SaveVariations перезаписывает весь набор вариаций товара.
func (r *ProductRepository) SaveVariations(ctx context.Context, productID int64, variations []domain.Variation) error {
	if variations == nil {
		variations = []domain.Variation{}
	}
	tag, err := r.conn.Exec(ctx,
		`UPDATE products SET variations = $2, updated_at = now() WHERE id = $1`,
		productID, variations,
	)
	if err != nil {
		return convertErr(err, "saving variations of product %d", productID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "saving variations of product %d", productID)
	}
	return nil
}
