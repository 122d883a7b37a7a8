package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"catalog_demo/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bearer header",
			input:  []byte("GET /v2/catalog/list HTTP/1.1\r\nAuthorization: Bearer EAAAl3x-secret\r\nAccept: application/json\r\n"),
			output: []byte("GET /v2/catalog/list HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\nAccept: application/json\r\n"),
		},
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "OAuth tokens",
			input:  []byte(`{"access_token":"EAAAEOuL","refresh_token":"EQAAEJ4n","token_type":"bearer"}`),
			output: []byte(`{"access_token":"[MASKED]","refresh_token":"[MASKED]","token_type":"bearer"}`),
		},
		{
			name:   "Discount payload untouched",
			input:  []byte(`{"objects":[{"id":"D1","discount_data":{"name":"Sale","percentage":"10"}}]}`),
			output: []byte(`{"objects":[{"id":"D1","discount_data":{"name":"Sale","percentage":"10"}}]}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"access_token":"EAAAEOuL"}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}
