package google

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenProvider supplies access tokens for authenticated API calls.
// Implementations handle refresh transparently; callers always get a
// token that is valid at the time of the call.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available.
	IsAuthenticated() bool
}

// StaticTokenProvider is a TokenProvider backed by a fixed token.
// Useful for tests and for tokens supplied through the environment.
type StaticTokenProvider struct {
	Token string
}

// GetToken returns the fixed token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.Token, nil
}

// IsAuthenticated returns true if a token is present.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.Token != ""
}

// TokenSourceAdapter adapts a TokenProvider to oauth2.TokenSource so
// Google API clients can use our token management.
type TokenSourceAdapter struct {
	provider TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
func NewTokenSource(ctx context.Context, provider TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource. Called by API clients whenever
// they need an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

// NewHTTPClient builds an *http.Client that attaches OAuth tokens from
// the provider to every request.
func NewHTTPClient(ctx context.Context, provider TokenProvider) *http.Client {
	return oauth2.NewClient(ctx, NewTokenSource(ctx, provider))
}
