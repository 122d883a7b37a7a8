package square

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"catalog_demo/internal/config"
	"catalog_demo/internal/domain"
	"catalog_demo/pkg/errcodes"
	"catalog_demo/pkg/httpx"
	"catalog_demo/pkg/logx"
)

const (
	metricsNamespace = "catalog_demo"
	userAgent        = "catalog-demo"
)

type TransportOptions struct {
	// Registerer receives the client metrics. Nil disables them.
	Registerer     prometheus.Registerer
	LogFieldMaxLen int
	Base           http.RoundTripper
}

// NewHTTPClient builds the http.Client used against Square. Round trippers
// from the outside in: metrics, rate limit, headers, bearer auth, logging.
func NewHTTPClient(cfg config.Square, opts TransportOptions) (*http.Client, error) {
	var rt http.RoundTripper = http.DefaultTransport
	if opts.Base != nil {
		rt = opts.Base
	}

	if cfg.LogHTTP {
		rt = httpx.NewLoggingRoundTripper(
			rt,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
		)
	}

	rt = httpx.NewAuthBearerRoundTripper(rt, httpx.NewTokenAuthenticator(accessToken(cfg.AccessToken)))

	rt = httpx.NewHeaderRoundTripper(rt, http.Header{
		"Square-Version": {cfg.APIVersion},
		"Accept":         {"application/json"},
		"User-Agent":     {userAgent},
	})

	rt = httpx.NewRateLimitRoundTripper(rt, cfg.RequestsPerSecond, 1)

	if opts.Registerer != nil {
		metrics, err := httpx.NewClientMetrics(opts.Registerer, metricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("httpx.NewClientMetrics: %w", err)
		}

		rt = httpx.NewMetricsRoundTripper(rt, metrics)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}, nil
}

// accessToken serves the configured token. Square tokens are not refreshed
// in-process, so a 401 is never replayed.
func accessToken(token string) httpx.TokenSource {
	return func(context.Context) (string, error) {
		if token == "" {
			return "", domain.NewError(errcodes.AccessTokenMissing, "square access token is not set")
		}

		return token, nil
	}
}
