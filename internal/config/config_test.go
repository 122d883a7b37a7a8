package config_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"catalog_demo/internal/config"
	"catalog_demo/pkg/errcodes"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(rq *require.Assertions, cfg config.Config)
	}{
		{
			name: "Defaults",
			env:  map[string]string{"SQUARE_ACCESS_TOKEN": "token"},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("token", cfg.Square.AccessToken)
				rq.Equal(config.EnvironmentSandbox, cfg.Square.Environment)
				rq.Equal(config.SandboxBaseURL, cfg.Square.URL())
				rq.Equal("2024-01-18", cfg.Square.APIVersion)
				rq.Equal(30*time.Second, cfg.Square.Timeout)
				rq.InDelta(10, cfg.Square.RequestsPerSecond, 0)
				rq.False(cfg.Square.LogHTTP)
				rq.Equal(slog.LevelInfo, cfg.Log.Level)
				rq.Equal(4096, cfg.Log.FieldMaxLen)
				rq.Empty(cfg.Metrics.ListenAddress)
			},
		},
		{
			name: "Production",
			env: map[string]string{
				"SQUARE_ACCESS_TOKEN": "token",
				"SQUARE_ENVIRONMENT":  "production",
				"LOG_LEVEL":           "debug",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal(config.ProductionBaseURL, cfg.Square.URL())
				rq.Equal(slog.LevelDebug, cfg.Log.Level)
			},
		},
		{
			name: "Base URL override",
			env: map[string]string{
				"SQUARE_ACCESS_TOKEN":    "token",
				"SQUARE_ENVIRONMENT":     "production",
				"SQUARE_BASE_URL":        "http://127.0.0.1:8080",
				"METRICS_LISTEN_ADDRESS": ":9090",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("http://127.0.0.1:8080", cfg.Square.URL())
				rq.Equal(":9090", cfg.Metrics.ListenAddress)
			},
		},
		{
			name:    "Missing token",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "Empty token",
			env:     map[string]string{"SQUARE_ACCESS_TOKEN": ""},
			wantErr: true,
		},
		{
			name: "Unknown environment",
			env: map[string]string{
				"SQUARE_ACCESS_TOKEN": "token",
				"SQUARE_ENVIRONMENT":  "staging",
			},
			wantErr: true,
		},
		{
			name: "Negative rate",
			env: map[string]string{
				"SQUARE_ACCESS_TOKEN":        "token",
				"SQUARE_REQUESTS_PER_SECOND": "-1",
			},
			wantErr: true,
		},
		{
			name: "Malformed timeout",
			env: map[string]string{
				"SQUARE_ACCESS_TOKEN": "token",
				"SQUARE_TIMEOUT":      "soon",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			for _, key := range []string{
				"SQUARE_ACCESS_TOKEN", "SQUARE_ENVIRONMENT", "SQUARE_BASE_URL", "SQUARE_API_VERSION",
				"SQUARE_TIMEOUT", "SQUARE_REQUESTS_PER_SECOND", "SQUARE_LOG_HTTP", "LOG_LEVEL",
				"LOG_NO_COLOR", "LOG_FIELD_MAX_LEN", "METRICS_LISTEN_ADDRESS",
			} {
				unsetEnv(t, key)
			}

			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			if tc.wantErr {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(string(errcodes.InvalidConfig), failure.Code(err).String())

				return
			}

			rq.NoError(err)
			tc.check(rq, cfg)
		})
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
