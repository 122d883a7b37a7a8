package square_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"catalog_demo/internal/config"
	"catalog_demo/internal/domain"
	"catalog_demo/internal/infrastructure/square"
	"catalog_demo/pkg/errcodes"
	"catalog_demo/pkg/tests"
)

func TestNewHTTPClient(t *testing.T) {
	rq := require.New(t)

	server := tests.NewCatalogServer(map[string]tests.CatalogResponse{
		"":   {Body: tests.PageJSON("p2")},
		"p2": {Body: tests.PageJSON("")},
	})
	defer server.Close()

	cfg := config.Square{
		AccessToken:       "secret",
		BaseURL:           server.URL,
		APIVersion:        "2024-01-18",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 0,
		LogHTTP:           true,
	}

	registry := prometheus.NewRegistry()

	httpClient, err := square.NewHTTPClient(cfg, square.TransportOptions{
		Registerer:     registry,
		LogFieldMaxLen: 1024,
	})
	rq.NoError(err)
	rq.Equal(5*time.Second, httpClient.Timeout)

	client := square.NewClient(cfg.URL(), httpClient)

	_, err = client.ListCatalog(context.Background(), "", discountTypes, nil)
	rq.NoError(err)

	_, err = client.ListCatalog(context.Background(), "p2", discountTypes, nil)
	rq.NoError(err)

	requests := server.Requests()
	rq.Len(requests, 2)

	for _, req := range requests {
		rq.Equal("Bearer secret", req.Header.Get("Authorization"))
		rq.Equal("2024-01-18", req.Header.Get("Square-Version"))
		rq.Equal("application/json", req.Header.Get("Accept"))
		rq.Equal("catalog-demo", req.Header.Get("User-Agent"))
	}

	count, err := testutil.GatherAndCount(registry, "catalog_demo_http_client_requests_total")
	rq.NoError(err)
	rq.Equal(1, count)

	_, err = square.NewHTTPClient(cfg, square.TransportOptions{Registerer: registry})
	rq.Error(err)
}

func TestNewHTTPClientWithoutMetrics(t *testing.T) {
	rq := require.New(t)

	httpClient, err := square.NewHTTPClient(config.Square{AccessToken: "secret"}, square.TransportOptions{})
	rq.NoError(err)
	rq.NotNil(httpClient.Transport)
	rq.NotEqual(http.DefaultTransport, httpClient.Transport)
}

func TestNewHTTPClientMissingToken(t *testing.T) {
	rq := require.New(t)

	server := tests.NewCatalogServer(map[string]tests.CatalogResponse{"": {Body: tests.PageJSON("")}})
	defer server.Close()

	cfg := config.Square{BaseURL: server.URL, APIVersion: "2024-01-18", Timeout: time.Second}

	httpClient, err := square.NewHTTPClient(cfg, square.TransportOptions{})
	rq.NoError(err)

	_, err = square.NewClient(cfg.URL(), httpClient).ListCatalog(context.Background(), "", discountTypes, nil)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.AccessTokenMissing, code)
	rq.Empty(server.Requests())
}
