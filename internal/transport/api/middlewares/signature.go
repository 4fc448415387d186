package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "X-Signature"
	RequestIDHeader = "X-Request-Id"
)

var ErrInvalidSignature = errors.New("Invalid signature") //nolint:staticcheck

// Signature проверяет заголовок X-Signature вида "ts=<unix>,v1=<hex>". v1 - HMAC-SHA256 с ключом secret
// от строки "id:<data.id>;request-id:<x-request-id>;ts:<ts>;", пустые части в строку не попадают.
// Проверяются только POST запросы, dataID достает идентификатор из уведомления.
func Signature(secret []byte, dataID func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ts, v1 := parseSignatureHeader(c.GetHeader(SignatureHeader))
		if ts == "" || v1 == "" {
			reject(c)
			return
		}

		expected := SignManifest(secret, dataID(c), c.GetHeader(RequestIDHeader), ts)
		if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
			reject(c)
			return
		}

		c.Next()
	}
}

// SignManifest считает подпись уведомления в hex.
func SignManifest(secret []byte, dataID, requestID, ts string) string {
	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	manifest.WriteString("ts:" + ts + ";")

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(manifest.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

//nolint:nonamedreturns
func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}

func reject(c *gin.Context) {
	c.Status(http.StatusUnauthorized)
	_ = c.Error(ErrInvalidSignature).SetType(gin.ErrorTypePublic)
	c.Abort()
}
