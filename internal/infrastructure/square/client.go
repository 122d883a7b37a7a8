package square

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"catalog_demo/internal/domain"
	"catalog_demo/internal/domain/entity"
	"catalog_demo/internal/domain/value"
	"catalog_demo/pkg/contextx"
	"catalog_demo/pkg/errcodes"
	"catalog_demo/pkg/logx"
)

const (
	listCatalogPath = "/v2/catalog/list"
	maxBodySize     = 16 << 20
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

// Client talks to the Square Catalog API. Authentication and the common
// headers are the job of the http.Client transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListCatalog fetches one page of catalog objects. In-band API errors are
// returned on the page, whatever the HTTP status. Only failures to get a
// usable answer are returned as error.
func (c *Client) ListCatalog(
	ctx context.Context,
	cursor string,
	types []value.CatalogObjectType,
	catalogVersion *int64,
) (entity.CatalogPage, error) {
	query := url.Values{}

	if len(types) > 0 {
		query.Set("types", value.JoinCatalogObjectTypes(types))
	}

	if cursor != "" {
		query.Set("cursor", cursor)
	}

	if catalogVersion != nil {
		query.Set("catalog_version", strconv.FormatInt(*catalogVersion, 10))
	}

	endpoint := c.baseURL + listCatalogPath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return entity.CatalogPage{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.CatalogPage{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return entity.CatalogPage{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	var dto listCatalogResponse

	decodeErr := json.Unmarshal(body, &dto)

	if decodeErr == nil && len(dto.Errors) > 0 {
		logger(ctx).Debug(
			"catalog api returned errors",
			slog.Int(logx.FieldResponseStatus, resp.StatusCode),
			slog.Int(logx.FieldErrors, len(dto.Errors)),
		)

		return dto.toDomain(), nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.CatalogPage{}, domain.NewError(
			errcodes.CatalogUnexpectedStatus,
			"list catalog: unexpected status %d", resp.StatusCode,
		)
	}

	if decodeErr != nil {
		return entity.CatalogPage{}, domain.WrapError(decodeErr, errcodes.CatalogDecode, "list catalog: decode response")
	}

	return dto.toDomain(), nil
}
