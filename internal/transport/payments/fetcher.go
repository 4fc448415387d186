// Package payments получает актуальное состояние платежа у провайдера и приводит его к виду,
// с которым работает сервисный слой.
package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/service"
	"github.com/fsdevblog/groph-payhook/internal/transport/payments/client"
)

// Fetcher реализует service.PaymentFetcher поверх HTTP клиента провайдера.
type Fetcher struct {
	client Client
	l      *logrus.Entry
}

func New(apiBaseURL, accessToken string, timeout time.Duration, l *logrus.Logger) *Fetcher {
	return NewFetcher(client.New(apiBaseURL, accessToken, timeout), l)
}

func NewFetcher(c Client, l *logrus.Logger) *Fetcher {
	return &Fetcher{
		client: c,
		l: l.WithFields(logrus.Fields{
			"component": "payments",
			"module":    "fetcher",
		}),
	}
}

func (f *Fetcher) FetchPayment(ctx context.Context, paymentID string) (*service.PaymentDetails, error) {
	start := time.Now()
	payment, err := f.client.GetPayment(ctx, paymentID)
	log := f.l.WithFields(logrus.Fields{
		"paymentID": paymentID,
		"duration":  time.Since(start).String(),
	})
	if err != nil {
		log.WithError(err).Error("failed to fetch payment")
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}
	log.WithField("status", payment.Status).Debug("payment fetched")

	return toDetails(paymentID, payment), nil
}

func toDetails(requestedID string, p *client.Payment) *service.PaymentDetails {
	id := requestedID
	if p.ID != 0 {
		id = strconv.FormatInt(p.ID, 10)
	}
	return &service.PaymentDetails{
		PaymentID:         id,
		Status:            domain.PaymentStatusType(strings.ToLower(strings.TrimSpace(p.Status))),
		StatusDetail:      p.StatusDetail,
		PaymentMethodID:   p.PaymentMethodID,
		Amount:            p.TransactionAmount,
		ExternalReference: strings.TrimSpace(p.ExternalReference),
		Metadata:          p.Metadata,
	}
}
