// Package lambdagw запускает gin роутер за API Gateway HTTP API (события формата 2.0).
package lambdagw

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Adapter struct {
	proxy *ginadapter.GinLambdaV2
	l     *logrus.Entry
}

func New(router *gin.Engine, l *logrus.Logger) *Adapter {
	return &Adapter{
		proxy: ginadapter.NewV2(router),
		l: l.WithFields(logrus.Fields{
			"component": "lambdagw",
			"module":    "adapter",
		}),
	}
}

// Handle прогоняет событие через роутер. Ошибка возвращается только если событие не удалось
// преобразовать в запрос: ответы роутера, включая 5xx, отдаются как есть.
func (a *Adapter) Handle(
	ctx context.Context,
	event events.APIGatewayV2HTTPRequest,
) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := a.proxy.ProxyWithContext(ctx, event)
	if err != nil {
		a.l.WithError(err).WithFields(logrus.Fields{
			"requestID": event.RequestContext.RequestID,
			"path":      event.RawPath,
		}).Error("failed to proxy event")
		return resp, fmt.Errorf("proxy event %s: %w", event.RequestContext.RequestID, err)
	}
	return resp, nil
}
