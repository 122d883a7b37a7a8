package httpx

import "net/http"

// HeaderRoundTripper adds fixed headers to every request. Headers already set
// on the request win.
type HeaderRoundTripper struct {
	next    http.RoundTripper
	headers http.Header
}

func NewHeaderRoundTripper(next http.RoundTripper, headers http.Header) HeaderRoundTripper {
	return HeaderRoundTripper{
		next:    next,
		headers: headers.Clone(),
	}
}

func (rt HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	for key, values := range rt.headers {
		if clone.Header.Get(key) != "" {
			continue
		}

		for _, v := range values {
			clone.Header.Add(key, v)
		}
	}

	return rt.next.RoundTrip(clone) //nolint:wrapcheck
}
