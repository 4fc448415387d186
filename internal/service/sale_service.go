package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type ApplySalePaymentArgs struct {
	PaymentID string
	// ExternalReference идентификатор заказа, переданный провайдеру при checkout. Используется,
	// если платеж еще не привязан к заказу.
	ExternalReference string
	Status            domain.PaymentStatusType
	StatusDetail      string
	PaymentMethodID   string
}

type SaleReconciliation struct {
	SaleID   int64
	From     domain.PaymentStatusType
	To       domain.PaymentStatusType
	Decision domain.TransitionDecision
	// Linked платеж был привязан к заказу в этой обработке.
	Linked bool
	Items  []ItemOutcome
}

type SaleService struct {
	uow       uow.UOW
	inventory *InventoryService
	l         *logrus.Entry
}

func NewSaleService(u uow.UOW, inventory *InventoryService, l *logrus.Logger) *SaleService {
	return &SaleService{
		uow:       u,
		inventory: inventory,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "sale",
		}),
	}
}

// ApplyPayment применяет статус платежа к заказу.
//
// Алгоритм работы (все в одной транзакции):
//  1. Блокирует заказ по идентификатору платежа, либо по ExternalReference с привязкой платежа.
//  2. Проверяет переход по таблице состояний. Повтор и финальный статус - noop, запрещенный переход
//     пишется в лог и тоже ничего не меняет.
//  3. Обновляет статус условным UPDATE и, если заказ впервые стал approved, списывает остатки.
//
// Если заказ не найден, возвращает domain.ErrSaleNotFound.
func (s *SaleService) ApplyPayment(ctx context.Context, args ApplySalePaymentArgs) (*SaleReconciliation, error) {
	var result *SaleReconciliation

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		result = nil
		repo, repoErr := uow.GetAs[SaleRepository](tx, uow.RepositoryName(repoargs.SaleRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		sale, linked, findErr := s.lockSale(c, repo, args)
		if findErr != nil {
			return findErr
		}

		res := &SaleReconciliation{
			SaleID:   sale.ID,
			From:     sale.PaymentStatus,
			To:       args.Status,
			Decision: domain.SaleTransition(sale.PaymentStatus, args.Status),
			Linked:   linked,
		}
		result = res

		if res.Decision != domain.TransitionApply {
			return nil
		}

		updated, updErr := repo.UpdatePaymentStatus(c, repoargs.SalePaymentStatusUpdate{
			ID:              sale.ID,
			From:            sale.PaymentStatus,
			To:              args.Status,
			StatusDetail:    args.StatusDetail,
			PaymentMethodID: args.PaymentMethodID,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		if !updated {
			// статус уже изменила другая доставка.
			res.Decision = domain.TransitionNoop
			return nil
		}

		if args.Status != domain.PaymentStatusApproved {
			return nil
		}

		items, decErr := s.inventory.DecrementForSale(c, tx, sale.ID, sale.Items)
		res.Items = items
		return decErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("applying payment %s to sale: %w", args.PaymentID, txErr)
	}

	log := s.l.WithFields(logrus.Fields{
		"paymentID": args.PaymentID,
		"saleID":    result.SaleID,
		"from":      result.From,
		"to":        result.To,
		"decision":  result.Decision.String(),
	})
	if result.Decision == domain.TransitionReject {
		log.Warn("payment status transition rejected")
	} else {
		log.Info("payment applied to sale")
	}
	return result, nil
}

// lockSale ищет заказ по платежу. Если заказ еще не привязан, пробует найти его по ExternalReference
// и привязывает платеж.
func (s *SaleService) lockSale(
	ctx context.Context,
	repo SaleRepository,
	args ApplySalePaymentArgs,
) (*domain.Sale, bool, error) {
	sale, err := repo.LockByPaymentID(ctx, args.PaymentID)
	if err == nil {
		return sale, false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, false, err //nolint:wrapcheck
	}

	saleID, parseErr := strconv.ParseInt(args.ExternalReference, 10, 64)
	if parseErr != nil || saleID <= 0 {
		return nil, false, fmt.Errorf("%w: payment %s", domain.ErrSaleNotFound, args.PaymentID)
	}

	sale, err = repo.LockUnlinkedByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("%w: payment %s, reference %d", domain.ErrSaleNotFound, args.PaymentID, saleID)
		}
		return nil, false, err //nolint:wrapcheck
	}

	if attachErr := repo.AttachPayment(ctx, sale.ID, args.PaymentID); attachErr != nil {
		return nil, false, attachErr //nolint:wrapcheck
	}
	sale.PaymentID = args.PaymentID
	return sale, true, nil
}
