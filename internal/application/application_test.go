package application_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"catalog_demo/internal/application"
	"catalog_demo/internal/transport/cli"
	"catalog_demo/pkg/tests"
)

func TestRun(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		pages      map[string]tests.CatalogResponse
		wantOut    string
		wantErrOut string
		wantFailed bool
	}{
		{
			name: "Lists discounts",
			pages: map[string]tests.CatalogResponse{
				"": {Body: tests.PageJSON("", tests.Discount{
					ID: "D1", Name: "Sale", DiscountType: "FIXED_PERCENTAGE", Percentage: "10",
				})},
			},
			wantOut: "Sale [10%] (D1)\n",
		},
		{
			name: "Service error",
			pages: map[string]tests.CatalogResponse{
				"": {Status: http.StatusBadRequest, Body: tests.ErrorsJSON(tests.APIError{
					Category: "INVALID_REQUEST_ERROR", Code: "INVALID_VALUE", Detail: "bad types", Field: "types",
				})},
			},
			wantErrOut: "[ERROR] INVALID_REQUEST_ERROR INVALID_VALUE: bad types (field: types)\n",
			wantFailed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := tests.NewCatalogServer(tc.pages)
			defer server.Close()

			t.Setenv("SQUARE_ACCESS_TOKEN", "secret")
			t.Setenv("SQUARE_BASE_URL", server.URL)
			t.Setenv("SQUARE_REQUESTS_PER_SECOND", "0")
			t.Setenv("LOG_LEVEL", "error")
			t.Setenv("METRICS_LISTEN_ADDRESS", "")

			var out, errOut bytes.Buffer

			err := application.Run(context.Background(), []string{"list_discounts"}, &out, &errOut)
			if tc.wantFailed {
				rq.ErrorIs(err, cli.ErrExampleFailed)
			} else {
				rq.NoError(err)
			}

			rq.Equal(tc.wantOut, out.String())
			rq.Equal(tc.wantErrOut, errOut.String())

			requests := server.Requests()
			rq.Len(requests, 1)
			rq.Equal("Bearer secret", requests[0].Header.Get("Authorization"))
			rq.Equal("catalog-demo", requests[0].Header.Get("User-Agent"))
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	rq := require.New(t)

	t.Setenv("SQUARE_ACCESS_TOKEN", "secret")
	t.Setenv("SQUARE_ENVIRONMENT", "staging")

	err := application.Run(context.Background(), []string{"examples"}, &bytes.Buffer{}, &bytes.Buffer{})
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
}
