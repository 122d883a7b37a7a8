package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"catalog_demo/internal/domain/entity"
)

func TestAPIErrorString(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		err    entity.APIError
		output string
	}{
		{
			name: "Without field",
			err: entity.APIError{
				Category: "AUTHENTICATION_ERROR",
				Code:     "UNAUTHORIZED",
				Detail:   "This request could not be authorized.",
			},
			output: "AUTHENTICATION_ERROR UNAUTHORIZED: This request could not be authorized.",
		},
		{
			name: "With field",
			err: entity.APIError{
				Category: "INVALID_REQUEST_ERROR",
				Code:     "INVALID_CURSOR",
				Detail:   "The pagination cursor is invalid.",
				Field:    "cursor",
			},
			output: "INVALID_REQUEST_ERROR INVALID_CURSOR: The pagination cursor is invalid. (field: cursor)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.output, tc.err.String())
		})
	}
}

func TestCatalogPage(t *testing.T) {
	rq := require.New(t)

	var empty entity.CatalogPage

	rq.False(empty.HasErrors())
	rq.False(empty.HasNext())

	page := entity.CatalogPage{
		Cursor: "abc",
		Errors: []entity.APIError{{Category: "API_ERROR", Code: "INTERNAL_SERVER_ERROR"}},
	}

	rq.True(page.HasErrors())
	rq.True(page.HasNext())
}
