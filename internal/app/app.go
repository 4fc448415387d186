package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/internal/config"
	"github.com/fsdevblog/groph-payhook/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-payhook/internal/service"
	"github.com/fsdevblog/groph-payhook/internal/transport/api"
	"github.com/fsdevblog/groph-payhook/internal/transport/payments"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает HTTP сервер и работает до SIGINT/SIGTERM или ошибки сервера.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, closeFn, buildErr := a.Build(notifyCtx)
	if buildErr != nil {
		return fmt.Errorf("app run: %w", buildErr)
	}
	defer closeFn()

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// Build подключается к базе, применяет миграции и собирает роутер. closeFn закрывает пул соединений.
//
//nolint:nonamedreturns
func (a *App) Build(ctx context.Context) (router *gin.Engine, closeFn func(), err error) {
	a.Logger.Infof("Starting app with config: %s", a.Config.String())

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("build: %w", connErr)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	unitOfWork, uowErr := pgrepo.NewUnitOfWork(conn)
	if uowErr != nil {
		return nil, nil, fmt.Errorf("build: %w", uowErr)
	}

	fetcher := payments.New(
		a.Config.PaymentsAPIAddress,
		a.Config.PaymentsAccessToken,
		a.Config.PaymentsAPITimeout,
		a.Logger,
	)

	services := service.Factory(unitOfWork, fetcher, a.Config.PaymentsAPITimeout, a.Logger)

	router, routerErr := api.New(api.RouterArgs{
		Logger:        a.Logger,
		Reconciler:    services.PaymentService,
		WebhookSecret: a.Config.WebhookSecret,
	})
	if routerErr != nil {
		return nil, nil, fmt.Errorf("build: %w", routerErr)
	}

	return router, conn.Close, nil
}
