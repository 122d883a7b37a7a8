package httpx

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitRoundTripper blocks until the limiter grants a slot. The wait is
// bound to the request context.
type RateLimitRoundTripper struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitRoundTripper allows perSecond requests with the given burst.
// perSecond <= 0 disables limiting.
func NewRateLimitRoundTripper(next http.RoundTripper, perSecond float64, burst int) RateLimitRoundTripper {
	rt := RateLimitRoundTripper{next: next}

	if perSecond > 0 {
		rt.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}

	return rt
}

func (rt RateLimitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.limiter != nil {
		if err := rt.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("limiter.Wait: %w", err)
		}
	}

	return rt.next.RoundTrip(req) //nolint:wrapcheck
}
