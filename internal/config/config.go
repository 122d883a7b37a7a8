package config

import (
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"catalog_demo/pkg/errcodes"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	SandboxBaseURL    = "https://connect.squareupsandbox.com"
	ProductionBaseURL = "https://connect.squareup.com"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	Square  Square
	Log     Log
	Metrics Metrics
}

type Square struct {
	AccessToken       string        `env:"SQUARE_ACCESS_TOKEN,required" json:"-" validate:"required"`
	Environment       string        `env:"SQUARE_ENVIRONMENT" envDefault:"sandbox" validate:"oneof=sandbox production"`
	BaseURL           string        `env:"SQUARE_BASE_URL" validate:"omitempty,url"`
	APIVersion        string        `env:"SQUARE_API_VERSION" envDefault:"2024-01-18" validate:"required"`
	Timeout           time.Duration `env:"SQUARE_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	RequestsPerSecond float64       `env:"SQUARE_REQUESTS_PER_SECOND" envDefault:"10" validate:"gte=0"`
	LogHTTP           bool          `env:"SQUARE_LOG_HTTP" envDefault:"false"`
}

// URL is the API base: the override if set, otherwise the environment default.
func (s Square) URL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}

	if s.Environment == EnvironmentProduction {
		return ProductionBaseURL
	}

	return SandboxBaseURL
}

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	NoColor     bool       `env:"LOG_NO_COLOR" envDefault:"false"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gte=0"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" validate:"omitempty,hostname_port"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, failure.NewInvalidArgumentError(
			fmt.Errorf("env.Parse: %w", err).Error(),
			failure.WithCode(errcodes.InvalidConfig),
			failure.WithDescription(err.Error()),
		)
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, failure.NewInvalidArgumentError(
			"config validation error",
			failure.WithCode(errcodes.InvalidConfig),
			failure.WithDescription(err.Error()),
		)
	}

	return config, nil
}
