package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"catalog_demo/pkg/httpx"
)

func TestHeaderRoundTripper(t *testing.T) {
	rq := require.New(t)

	var got http.Header

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer httpServer.Close()

	client := &http.Client{
		Transport: httpx.NewHeaderRoundTripper(http.DefaultTransport, http.Header{
			"Square-Version": {"2024-01-18"},
			"Accept":         {"application/json"},
		}),
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, httpServer.URL, http.NoBody)
	rq.NoError(err)
	req.Header.Set("Accept", "text/plain")

	resp, err := client.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal("2024-01-18", got.Get("Square-Version"))
	rq.Equal("text/plain", got.Get("Accept"))
	rq.Empty(req.Header.Get("Square-Version"))
}
