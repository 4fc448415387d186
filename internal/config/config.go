package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultRunAddress         = "localhost:8080"
	defaultMigrationsDir      = "internal/db/migrations"
	defaultPaymentsAPIAddress = "https://api.mercadopago.com"
	defaultPaymentsAPITimeout = 5 * time.Second
)

type Config struct {
	RunAddress          string        `env:"RUN_ADDRESS"`
	DatabaseDSN         string        `env:"DATABASE_URI"`
	MigrationsDir       string        `env:"MIGRATIONS_DIR"`
	PaymentsAPIAddress  string        `env:"PAYMENTS_API_ADDRESS"`
	PaymentsAccessToken string        `env:"PAYMENTS_ACCESS_TOKEN"`
	PaymentsAPITimeout  time.Duration `env:"PAYMENTS_API_TIMEOUT"`
	WebhookSecret       string        `env:"WEBHOOK_SECRET"`
}

// String скрывает секреты при выводе конфигурации в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s PaymentsAPIAddress:%s PaymentsAPITimeout:%s WebhookSecretSet:%t}",
		c.RunAddress, c.MigrationsDir, c.PaymentsAPIAddress, c.PaymentsAPITimeout, c.WebhookSecret != "",
	)
}

func LoadConfig() (*Config, error) {
	return loadConfig(flag.CommandLine, nil)
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// loadConfig значения из окружения имеют приоритет над флагами. args == nil - аргументы командной строки.
func loadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(fs, args, &flagsConfig); flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.PaymentsAccessToken == "" {
		return nil, errors.New("payments access token is not set")
	}
	return conf, nil
}

func loadFlags(fs *flag.FlagSet, args []string, flagConfig *Config) error {
	fs.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", defaultMigrationsDir, "Database migrations directory")
	fs.StringVar(&flagConfig.PaymentsAPIAddress, "p", defaultPaymentsAPIAddress, "Payments API base address")
	fs.StringVar(&flagConfig.PaymentsAccessToken, "t", "", "Payments API access token")
	fs.DurationVar(&flagConfig.PaymentsAPITimeout, "pt", defaultPaymentsAPITimeout, "Payments API request timeout")
	fs.StringVar(&flagConfig.WebhookSecret, "s", "", "Webhook signature secret, empty disables the check")

	if args == nil {
		args = os.Args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	timeout := envConfig.PaymentsAPITimeout
	if timeout <= 0 {
		timeout = flagsConfig.PaymentsAPITimeout
	}
	return &Config{
		RunAddress:          defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:         defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:       defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		PaymentsAPIAddress:  defaultIfBlank(envConfig.PaymentsAPIAddress, flagsConfig.PaymentsAPIAddress),
		PaymentsAccessToken: defaultIfBlank(envConfig.PaymentsAccessToken, flagsConfig.PaymentsAccessToken),
		PaymentsAPITimeout:  timeout,
		WebhookSecret:       defaultIfBlank(envConfig.WebhookSecret, flagsConfig.WebhookSecret),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
