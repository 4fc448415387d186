package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/domain"
)

const DefaultFetchTimeout = 5 * time.Second

// PaymentDetails актуальное состояние платежа у провайдера.
type PaymentDetails struct {
	PaymentID         string
	Status            domain.PaymentStatusType
	StatusDetail      string
	PaymentMethodID   string
	Amount            decimal.Decimal
	ExternalReference string
	Metadata          map[string]any
}

type ReconcileResult struct {
	PaymentID string
	Flow      FlowType
	Status    domain.PaymentStatusType
	Sale      *SaleReconciliation
	Recharge  *RechargeReconciliation
}

// PaymentService точка входа сверки: получает платеж у провайдера, определяет поток и передает
// платеж в заказ или в пополнение кошелька.
type PaymentService struct {
	fetcher      PaymentFetcher
	sales        SalePaymentApplier
	recharges    RechargePaymentApplier
	fetchTimeout time.Duration
	l            *logrus.Entry
}

func NewPaymentService(
	fetcher PaymentFetcher,
	sales SalePaymentApplier,
	recharges RechargePaymentApplier,
	l *logrus.Logger,
) *PaymentService {
	return &PaymentService{
		fetcher:      fetcher,
		sales:        sales,
		recharges:    recharges,
		fetchTimeout: DefaultFetchTimeout,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "payment",
		}),
	}
}

// SetFetchTimeout ограничивает время запроса к провайдеру.
func (p *PaymentService) SetFetchTimeout(timeout time.Duration) *PaymentService {
	if timeout > 0 {
		p.fetchTimeout = timeout
	}
	return p
}

// Reconcile сверяет платеж paymentID. Без данных провайдера ничего не изменяется: любая ошибка запроса
// возвращается как domain.ErrIntegration.
func (p *PaymentService) Reconcile(ctx context.Context, paymentID string) (*ReconcileResult, error) {
	payment, fetchErr := p.fetch(ctx, paymentID)
	if fetchErr != nil {
		return nil, fetchErr
	}

	cls := Classify(payment.Metadata)
	log := p.l.WithFields(logrus.Fields{
		"paymentID": paymentID,
		"status":    payment.Status,
		"flow":      cls.Flow.String(),
	})
	if cls.MarkerWithoutWallet {
		log.Warn("recharge marker without wallet reference, handling as order payment")
	}
	log.Debug("payment classified")

	result := &ReconcileResult{
		PaymentID: paymentID,
		Flow:      cls.Flow,
		Status:    payment.Status,
	}

	switch cls.Flow {
	case FlowRecharge:
		res, err := p.recharges.ApplyPayment(ctx, ApplyRechargePaymentArgs{
			PaymentID: paymentID,
			WalletID:  cls.WalletID,
			Amount:    payment.Amount,
			Status:    payment.Status,
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		result.Recharge = res
	default:
		res, err := p.sales.ApplyPayment(ctx, ApplySalePaymentArgs{
			PaymentID:         paymentID,
			ExternalReference: payment.ExternalReference,
			Status:            payment.Status,
			StatusDetail:      payment.StatusDetail,
			PaymentMethodID:   payment.PaymentMethodID,
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		result.Sale = res
	}
	return result, nil
}

func (p *PaymentService) fetch(ctx context.Context, paymentID string) (*PaymentDetails, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	payment, err := p.fetcher.FetchPayment(fetchCtx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching payment %s: %s", domain.ErrIntegration, paymentID, err.Error())
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: fetching payment %s: empty response", domain.ErrIntegration, paymentID)
	}
	return payment, nil
}
