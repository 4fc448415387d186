package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/fsdevblog/groph-payhook/internal/app"
	"github.com/fsdevblog/groph-payhook/internal/config"
	"github.com/fsdevblog/groph-payhook/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)
	if err := godotenv.Load(); err != nil {
		l.Debug("no .env file, using environment")
	}

	conf := config.MustLoadConfig()

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
