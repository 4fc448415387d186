package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/fsdevblog/groph-payhook/internal/app"
	"github.com/fsdevblog/groph-payhook/internal/config"
	"github.com/fsdevblog/groph-payhook/internal/logger"
	"github.com/fsdevblog/groph-payhook/internal/transport/lambdagw"
)

func main() {
	l := logger.New(os.Stdout)
	if err := godotenv.Load(); err != nil {
		l.Debug("no .env file, using environment")
	}

	conf := config.MustLoadConfig()

	// пул соединений живет, пока жив контейнер функции.
	router, _, err := app.New(conf, l).Build(context.Background())
	if err != nil {
		l.WithError(err).Fatal("failed to build app")
	}

	lambda.Start(lambdagw.New(router, l).Handle)
}
