package httpx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrEmptyToken = errors.New("token source returned an empty token")

// TokenSource yields the current access token.
type TokenSource func(context.Context) (string, error)

// TokenAuthenticator caches the token returned by a TokenSource. It is safe
// for concurrent use.
type TokenAuthenticator struct {
	source TokenSource
	mu     sync.RWMutex
	token  string
}

func NewTokenAuthenticator(source TokenSource) *TokenAuthenticator {
	return &TokenAuthenticator{source: source}
}

func (a *TokenAuthenticator) Authenticate(ctx context.Context) error {
	token, err := a.source(ctx)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	if token == "" {
		return ErrEmptyToken
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	return nil
}

func (a *TokenAuthenticator) BearerToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.token
}
