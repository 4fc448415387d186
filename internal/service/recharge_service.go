package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type ApplyRechargePaymentArgs struct {
	PaymentID string
	WalletID  int64
	Amount    decimal.Decimal
	Status    domain.PaymentStatusType
}

type RechargeReconciliation struct {
	RechargeID int64
	WalletID   int64
	From       domain.RechargeStatusType
	To         domain.RechargeStatusType
	Decision   domain.TransitionDecision
	// Linked платеж был записан в заявку в этой обработке (поиск по кошельку и сумме).
	Linked bool
	// Wallet и Entry заполняются только при зачислении.
	Wallet *domain.Wallet
	Entry  *domain.WalletTransaction
}

type RechargeService struct {
	uow uow.UOW
	l   *logrus.Entry
	now func() time.Time
}

func NewRechargeService(u uow.UOW, l *logrus.Logger) *RechargeService {
	return &RechargeService{
		uow: u,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "recharge",
		}),
		now: time.Now,
	}
}

// ApplyPayment применяет статус платежа к заявке на пополнение кошелька.
//
// Алгоритм работы (все в одной транзакции):
//  1. Блокирует заявку по идентификатору платежа. Если ее нет - самую свежую pending заявку кошелька
//     с той же суммой, и записывает в нее платеж.
//  2. approved: условно переводит заявку в approved, увеличивает баланс и добавляет запись в журнал.
//     rejected/cancelled: условно переводит заявку в rejected. Прочие статусы ничего не меняют.
//
// Если заявка не найдена, возвращает domain.ErrRechargeNotFound. Неположительная сумма платежа
// отклоняется с domain.ErrIntegration до открытия транзакции.
func (s *RechargeService) ApplyPayment(
	ctx context.Context,
	args ApplyRechargePaymentArgs,
) (*RechargeReconciliation, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment %s has non-positive amount %s",
			domain.ErrIntegration, args.PaymentID, args.Amount.String())
	}

	var result *RechargeReconciliation

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		result = nil
		rechargeRepo, repoErr := uow.GetAs[WalletRechargeRepository](
			tx, uow.RepositoryName(repoargs.WalletRechargeRepoName),
		)
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		recharge, linked, findErr := s.lockRecharge(c, rechargeRepo, args)
		if findErr != nil {
			return findErr
		}

		to, decision := domain.RechargeTransition(recharge.Status, args.Status)
		res := &RechargeReconciliation{
			RechargeID: recharge.ID,
			WalletID:   recharge.WalletID,
			From:       recharge.Status,
			To:         to,
			Decision:   decision,
			Linked:     linked,
		}
		result = res

		if decision != domain.TransitionApply {
			return nil
		}

		var approvedAt *time.Time
		if to == domain.RechargeStatusApproved {
			now := s.now().UTC()
			approvedAt = &now
		}
		updated, updErr := rechargeRepo.UpdateStatus(c, repoargs.RechargeStatusUpdate{
			ID:         recharge.ID,
			From:       recharge.Status,
			To:         to,
			ApprovedAt: approvedAt,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		if !updated {
			res.Decision = domain.TransitionNoop
			return nil
		}

		if to != domain.RechargeStatusApproved {
			return nil
		}
		return s.credit(c, tx, recharge, args, res)
	})

	if txErr != nil {
		return nil, fmt.Errorf("applying payment %s to wallet recharge: %w", args.PaymentID, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"paymentID":  args.PaymentID,
		"rechargeID": result.RechargeID,
		"walletID":   result.WalletID,
		"from":       result.From,
		"to":         result.To,
		"decision":   result.Decision.String(),
	}).Info("payment applied to wallet recharge")

	return result, nil
}

// credit зачисляет сумму на кошелек и пишет запись в журнал. Вызывается только внутри транзакции,
// в которой заявка переведена в approved.
func (s *RechargeService) credit(
	ctx context.Context,
	tx uow.TX,
	recharge *domain.WalletRecharge,
	args ApplyRechargePaymentArgs,
	res *RechargeReconciliation,
) error {
	walletRepo, wErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if wErr != nil {
		return wErr //nolint:wrapcheck
	}
	ledgerRepo, lErr := uow.GetAs[WalletTransactionRepository](
		tx, uow.RepositoryName(repoargs.WalletTransactionRepoName),
	)
	if lErr != nil {
		return lErr //nolint:wrapcheck
	}

	wallet, creditErr := walletRepo.Credit(ctx, recharge.WalletID, args.Amount)
	if creditErr != nil {
		if errors.Is(creditErr, domain.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", domain.ErrWalletNotFound, recharge.WalletID)
		}
		return creditErr //nolint:wrapcheck
	}

	entry, entryErr := ledgerRepo.Create(ctx, repoargs.WalletTransactionCreate{
		ID:          uuid.New(),
		WalletID:    recharge.WalletID,
		RechargeID:  recharge.ID,
		Kind:        domain.TransactionKindRechargeCredit,
		Amount:      args.Amount,
		Description: fmt.Sprintf("Wallet recharge #%d, payment %s", recharge.ID, args.PaymentID),
	})
	if entryErr != nil {
		return entryErr //nolint:wrapcheck
	}

	res.Wallet = wallet
	res.Entry = entry
	return nil
}

func (s *RechargeService) lockRecharge(
	ctx context.Context,
	repo WalletRechargeRepository,
	args ApplyRechargePaymentArgs,
) (*domain.WalletRecharge, bool, error) {
	recharge, err := repo.LockByPaymentID(ctx, args.PaymentID)
	if err == nil {
		s.checkConsistency(recharge, args)
		return recharge, false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, false, err //nolint:wrapcheck
	}

	recharge, err = repo.LockLatestPending(ctx, args.WalletID, args.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, false, fmt.Errorf(
				"%w: payment %s, wallet %d, amount %s",
				domain.ErrRechargeNotFound, args.PaymentID, args.WalletID, args.Amount.String(),
			)
		}
		return nil, false, err //nolint:wrapcheck
	}

	if attachErr := repo.AttachPayment(ctx, recharge.ID, args.PaymentID); attachErr != nil {
		return nil, false, attachErr //nolint:wrapcheck
	}
	recharge.PaymentID = args.PaymentID
	return recharge, true, nil
}

// checkConsistency сверяет данные уже привязанной заявки с платежом. Расхождения не блокируют
// обработку: источником правды остается заявка, а сумма зачисления берется из платежа.
func (s *RechargeService) checkConsistency(recharge *domain.WalletRecharge, args ApplyRechargePaymentArgs) {
	log := s.l.WithFields(logrus.Fields{
		"paymentID":  args.PaymentID,
		"rechargeID": recharge.ID,
	})
	if recharge.WalletID != args.WalletID {
		log.WithFields(logrus.Fields{
			"rechargeWalletID": recharge.WalletID,
			"metadataWalletID": args.WalletID,
		}).Warn("payment metadata points to another wallet")
	}
	if !recharge.Amount.Equal(args.Amount) {
		log.WithFields(logrus.Fields{
			"requested": recharge.Amount.String(),
			"paid":      args.Amount.String(),
		}).Warn("paid amount differs from requested")
	}
}
