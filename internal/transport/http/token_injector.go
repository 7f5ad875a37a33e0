package http

import "net/http"

// TokenSource supplies the current session token, if any.
// An empty string means no member is signed in.
type TokenSource interface {
	Token() string
}

// TokenInjector is a custom http.RoundTripper that attaches the session token to HTTP requests.
// Requests made before sign-in pass through unchanged.
type TokenInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokenSource provides the current session token.
	tokenSource TokenSource
}

// NewTokenInjector creates and returns a new instance of TokenInjector.
func NewTokenInjector(next http.RoundTripper, tokenSource TokenSource) http.RoundTripper {
	return &TokenInjector{
		next:        next,
		tokenSource: tokenSource,
	}
}

// RoundTrip executes a single HTTP transaction and attaches the session token if one is available.
// It implements the http.RoundTripper interface.
func (t *TokenInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokenSource.Token(); token != "" && req.Header.Get(authTokenHeader) == "" {
		req.Header.Set(authTokenHeader, token)
	}

	return t.next.RoundTrip(req)
}
