package tests

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const ListCatalogPath = "/v2/catalog/list"

// CatalogResponse is a canned reply. Zero Status means 200.
type CatalogResponse struct {
	Status int
	Body   string
}

type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// CatalogServer is a stub of the catalog list endpoint. Replies are looked up
// by the cursor query parameter, the first page lives under "".
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	pages    map[string]CatalogResponse
	requests []RecordedRequest
}

func NewCatalogServer(pages map[string]CatalogResponse) *CatalogServer {
	s := &CatalogServer{pages: pages}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

// Requests returns the requests received so far.
func (s *CatalogServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

func (s *CatalogServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	resp, ok := s.pages[r.URL.Query().Get("cursor")]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path != ListCatalogPath {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(ErrorsJSON(APIError{Category: "INVALID_REQUEST_ERROR", Code: "NOT_FOUND", Detail: "unknown path"})))

		return
	}

	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(ErrorsJSON(APIError{Category: "INVALID_REQUEST_ERROR", Code: "INVALID_CURSOR", Detail: "unknown cursor"})))

		return
	}

	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}

	w.WriteHeader(resp.Status)
	w.Write([]byte(resp.Body))
}

type Discount struct {
	ID           string
	Name         string
	DiscountType string
	Percentage   string
	Amount       *int64
	Currency     string
}

type APIError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

type money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type discountData struct {
	Name         string `json:"name,omitempty"`
	DiscountType string `json:"discount_type,omitempty"`
	Percentage   string `json:"percentage,omitempty"`
	AmountMoney  *money `json:"amount_money,omitempty"`
}

type catalogObject struct {
	Type         string        `json:"type"`
	ID           string        `json:"id"`
	Version      int64         `json:"version"`
	DiscountData *discountData `json:"discount_data,omitempty"`
}

type listResponse struct {
	Objects []catalogObject `json:"objects,omitempty"`
	Cursor  string          `json:"cursor,omitempty"`
	Errors  []APIError      `json:"errors,omitempty"`
}

// PageJSON renders a list response holding discounts.
func PageJSON(cursor string, discounts ...Discount) string {
	resp := listResponse{Cursor: cursor}

	for _, d := range discounts {
		data := &discountData{
			Name:         d.Name,
			DiscountType: d.DiscountType,
			Percentage:   d.Percentage,
		}

		if d.Amount != nil {
			data.AmountMoney = &money{Amount: *d.Amount, Currency: d.Currency}
		}

		resp.Objects = append(resp.Objects, catalogObject{
			Type:         "DISCOUNT",
			ID:           d.ID,
			Version:      1,
			DiscountData: data,
		})
	}

	return mustMarshal(resp)
}

// ErrorsJSON renders a response carrying only errors.
func ErrorsJSON(errs ...APIError) string {
	return mustMarshal(listResponse{Errors: errs})
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return string(b)
}
