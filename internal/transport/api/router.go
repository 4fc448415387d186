package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/transport/api/middlewares"
)

const (
	// DefaultServiceTimeout ограничивает сверку целиком, запрос к провайдеру ограничен отдельно.
	DefaultServiceTimeout = 10 * time.Second
)

const (
	WebhookRoute = "/webhook"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	Reconciler     PaymentReconciler
	WebhookSecret  string
	ServiceTimeout time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		if args.Logger != nil {
			args.Logger.WithField("panic", recovered).Error("recovered from panic")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(middlewares.Errors())

	webhookHandler := NewWebhookHandler(args.Reconciler, args.ServiceTimeout)

	handlers := []gin.HandlerFunc{webhookHandler.Handle}
	if args.WebhookSecret != "" {
		handlers = append([]gin.HandlerFunc{
			middlewares.Signature([]byte(args.WebhookSecret), notificationDataID),
		}, handlers...)
	}
	r.Any(WebhookRoute, handlers...)

	return r, nil
}
