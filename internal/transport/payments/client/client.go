// Package client клиент API платежного провайдера (поиск платежа по идентификатору).
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const RoutePayment = "/v1/payments/%s"

const defaultTimeout = 5 * time.Second

// Payment данные платежа, которые нужны для сверки. Metadata - произвольные данные, переданные при создании
// платежа; числа в ней декодируются как json.Number.
type Payment struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	PaymentMethodID   string          `json:"payment_method_id"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	ExternalReference string          `json:"external_reference"`
	Metadata          map[string]any  `json:"metadata"`
}

type HTTPClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// New создает клиента. Нулевой timeout заменяется значением по умолчанию, запрос без ограничения
// по времени не допускается.
func New(baseURL, accessToken string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// GetPayment запрашивает актуальное состояние платежа.
// Без токена доступа запрос не выполняется (ErrMissingAccessToken). При статусе ответа отличном от
// http.StatusOK возвращает *StatusCodeError.
//
//nolint:nonamedreturns
func (c *HTTPClient) GetPayment(ctx context.Context, paymentID string) (payment *Payment, err error) {
	if c.accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if paymentID == "" {
		return nil, ErrEmptyPaymentID
	}

	reqURL := c.baseURL + fmt.Sprintf(RoutePayment, url.PathEscape(paymentID))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if decErr := dec.Decode(&payment); decErr != nil {
		return nil, fmt.Errorf("parse response: %s", decErr.Error())
	}
	if payment == nil {
		return nil, errors.New("parse response: empty body")
	}

	return payment, nil
}
