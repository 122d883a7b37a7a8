package httpx

import (
	"context"
	"fmt"
	"net/http"

	"catalog_demo/pkg/logx"
)

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// AuthBearerRoundTripper sets the Authorization header from authenticator.
// On 401 it re-authenticates once and repeats the request only when a new
// token was obtained. Otherwise the 401 response is returned untouched.
type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	token := rt.authenticator.BearerToken()

	resp, err := rt.next.RoundTrip(withBearer(req, token))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode != http.StatusUnauthorized || !replayable(req) {
		return resp, nil
	}

	if err = rt.authenticator.Authenticate(req.Context()); err != nil {
		logger(req.Context()).Warn("re-authentication failed, keeping 401 response", logx.Error(err))
		return resp, nil
	}

	refreshed := rt.authenticator.BearerToken()
	if refreshed == token {
		return resp, nil
	}

	resp.Body.Close()

	retry := withBearer(req, refreshed)

	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}
	}

	return rt.next.RoundTrip(retry) //nolint:wrapcheck
}

func withBearer(req *http.Request, token string) *http.Request {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)

	return clone
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}
