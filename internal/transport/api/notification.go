package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const paymentNotificationType = "payment"

// notificationID идентификатор из data.id. Провайдер присылает его то строкой, то числом.
type notificationID string

func (n *notificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("data.id: %w", err)
		}
		*n = notificationID(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("data.id: %w", err)
	}
	if _, err := num.Int64(); err != nil {
		return fmt.Errorf("data.id: %w", err)
	}
	*n = notificationID(num.String())
	return nil
}

// webhookEnvelope тело уведомления. Action только валидируется: решение принимается по статусу платежа.
type webhookEnvelope struct {
	Type   string `json:"type" binding:"max_bytes=64"`
	Topic  string `json:"topic" binding:"max_bytes=64"`
	Action string `json:"action" binding:"max_bytes=128"`
	Data   struct {
		ID notificationID `json:"id" binding:"max_bytes=64"`
	} `json:"data"`
}

// notification уведомление после разбора тела и query string.
type notification struct {
	Type      string
	PaymentID string
}

func (n notification) IsPayment() bool {
	return strings.EqualFold(n.Type, paymentNotificationType)
}

// rawBody читает тело один раз и кэширует его в контексте под gin.BodyBytesKey, чтобы его могли
// прочитать и middleware, и обработчик.
func rawBody(c *gin.Context) ([]byte, error) {
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		if body, isBytes := cached.([]byte); isBytes {
			return body, nil
		}
	}
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	c.Set(gin.BodyBytesKey, body)
	return body, nil
}

// parseNotification разбирает уведомление. Поля, которых нет в теле, берутся из query string:
// старый формат уведомлений присылает ?topic=payment&id=<id> или ?type=payment&data.id=<id> с пустым телом.
func parseNotification(c *gin.Context) (*notification, error) {
	body, err := rawBody(c)
	if err != nil {
		return nil, err
	}

	var env webhookEnvelope
	if len(bytes.TrimSpace(body)) > 0 {
		if decErr := json.Unmarshal(body, &env); decErr != nil {
			return nil, errors.Join(ErrInvalidBody, decErr)
		}
		if valErr := binding.Validator.ValidateStruct(&env); valErr != nil {
			return nil, errors.Join(ErrInvalidBody, valErr)
		}
	}

	n := &notification{
		Type:      firstNonBlank(env.Type, env.Topic, c.Query("type"), c.Query("topic")),
		PaymentID: firstNonBlank(string(env.Data.ID), c.Query("data.id"), c.Query("id")),
	}
	if len(n.PaymentID) > 64 { //nolint:mnd
		return nil, fmt.Errorf("%w: payment id too long", ErrInvalidBody)
	}
	return n, nil
}

// notificationDataID отдает data.id для проверки подписи. Ошибки разбора здесь игнорируются,
// их вернет обработчик.
func notificationDataID(c *gin.Context) string {
	n, err := parseNotification(c)
	if err != nil {
		return ""
	}
	return n.PaymentID
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
