package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type ItemOutcomeStatus string

const (
	ItemDecremented       ItemOutcomeStatus = "decremented"
	ItemProductNotFound   ItemOutcomeStatus = "product_not_found"
	ItemVariationNotFound ItemOutcomeStatus = "variation_not_found"
	ItemFailed            ItemOutcomeStatus = "failed"
	// ItemSkipped позиция не обрабатывалась: транзакция уже прервана сбоем хранилища на предыдущей позиции.
	ItemSkipped           ItemOutcomeStatus = "skipped"
)

// ItemOutcome результат списания по одной позиции заказа.
type ItemOutcome struct {
	Item   domain.SaleItem
	Status ItemOutcomeStatus
	Before int
	After  int
	Err    error
}

type InventoryService struct {
	l *logrus.Entry
}

func NewInventoryService(l *logrus.Logger) *InventoryService {
	return &InventoryService{
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "inventory",
		}),
	}
}

// DecrementForSale списывает остатки по позициям оплаченного заказа внутри транзакции tx.
//
// Алгоритм работы:
//  1. Позиции обходятся в порядке возрастания id товара, чтобы параллельные заказы блокировали товары
//     в одном порядке.
//  2. Для каждой позиции товар блокируется, подходящая вариация уменьшается (не ниже нуля), и весь набор
//     вариаций сохраняется обратно.
//  3. Отсутствующий товар или вариация не прерывают обработку: позиция помечается в результате и пишется в лог.
//  4. Сбой хранилища прерывает обход: после ошибки транзакция postgres отвергает любые запросы (25P02),
//     поэтому оставшиеся позиции помечаются как ItemSkipped.
//
// Результаты возвращаются в исходном порядке позиций. Ошибка возвращается только при сбое хранилища,
// в этом случае транзакцию нужно откатить.
func (s *InventoryService) DecrementForSale(
	ctx context.Context,
	tx uow.TX,
	saleID int64,
	items []domain.SaleItem,
) ([]ItemOutcome, error) {
	if len(items) == 0 {
		return nil, nil
	}
	repo, repoErr := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].ProductID < items[order[b]].ProductID
	})

	outcomes := make([]ItemOutcome, len(items))
	for i := range items {
		outcomes[i] = ItemOutcome{Item: items[i], Status: ItemSkipped}
	}

	for _, idx := range order {
		outcome := s.decrementItem(ctx, repo, items[idx])
		outcomes[idx] = outcome

		log := s.l.WithFields(logrus.Fields{
			"saleID":    saleID,
			"productID": outcome.Item.ProductID,
			"size":      outcome.Item.Size,
			"sku":       outcome.Item.SKU,
			"quantity":  outcome.Item.Quantity,
		})
		switch outcome.Status {
		case ItemDecremented:
			log.WithFields(logrus.Fields{"before": outcome.Before, "after": outcome.After}).Debug("stock decremented")
		case ItemProductNotFound, ItemVariationNotFound:
			log.WithField("outcome", outcome.Status).Warn("stock not decremented, manual reconciliation required")
		case ItemFailed:
			log.WithError(outcome.Err).Error("stock decrement failed")
			return outcomes, fmt.Errorf("decrementing stock for sale %d: %w", saleID, outcome.Err)
		}
	}

	return outcomes, nil
}

func (s *InventoryService) decrementItem(ctx context.Context, repo ProductRepository, item domain.SaleItem) ItemOutcome {
	outcome := ItemOutcome{Item: item}

	product, err := repo.LockByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			outcome.Status = ItemProductNotFound
			return outcome
		}
		outcome.Status = ItemFailed
		outcome.Err = err
		return outcome
	}

	idx := product.FindVariation(item.Size, item.SKU)
	if idx < 0 {
		outcome.Status = ItemVariationNotFound
		return outcome
	}

	variations := make([]domain.Variation, len(product.Variations))
	copy(variations, product.Variations)

	outcome.Before = variations[idx].Quantity
	variations[idx].Decrement(item.Quantity)
	outcome.After = variations[idx].Quantity

	if saveErr := repo.SaveVariations(ctx, product.ID, variations); saveErr != nil {
		outcome.Status = ItemFailed
		outcome.Err = saveErr
		return outcome
	}
	outcome.Status = ItemDecremented
	return outcome
}
