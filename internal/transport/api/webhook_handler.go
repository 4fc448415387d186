package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	reconciler PaymentReconciler
	timeout    time.Duration
}

func NewWebhookHandler(reconciler PaymentReconciler, timeout time.Duration) *WebhookHandler {
	if timeout <= 0 {
		timeout = DefaultServiceTimeout
	}
	return &WebhookHandler{
		reconciler: reconciler,
		timeout:    timeout,
	}
}

// Handle WebhookRoute, любой метод.
func (h *WebhookHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.Ping(c)
	case http.MethodPost:
		h.Receive(c)
	default:
		abortWithError(c, http.StatusMethodNotAllowed, ErrMethodNotAllowed, gin.ErrorTypePublic)
	}
}

// Ping GET WebhookRoute. Провайдер проверяет доступность адреса при настройке уведомлений.
func (h *WebhookHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Webhook endpoint is reachable",
	})
}

// Receive POST WebhookRoute. Отвечает только после завершения сверки: при ошибке провайдер получает 500
// и повторит доставку.
func (h *WebhookHandler) Receive(c *gin.Context) {
	n, err := parseNotification(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrInvalidBody, gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		return
	}
	if n.Type == "" {
		abortWithError(c, http.StatusBadRequest, ErrInvalidBody, gin.ErrorTypePublic)
		return
	}

	if !n.IsPayment() {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if n.PaymentID == "" {
		abortWithError(c, http.StatusBadRequest, ErrPaymentIDMissing, gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, h.timeout)
	defer cancel()

	if _, recErr := h.reconciler.Reconcile(reqCtx, n.PaymentID); recErr != nil {
		abortWithError(c, http.StatusInternalServerError, recErr, gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "processed": true})
}

// abortWithError в отличии от gin.Context.AbortWithError не пишет заголовки сразу, ответ формирует
// middlewares.Errors.
func abortWithError(c *gin.Context, status int, err error, typ gin.ErrorType) {
	c.Status(status)
	_ = c.Error(err).SetType(typ)
	c.Abort()
}
