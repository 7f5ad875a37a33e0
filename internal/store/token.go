package store

import "sync/atomic"

// TokenSource holds the current session token.
// It is shared between the stores and the HTTP transport, so a token
// set after sign-in is attached to every following request.
type TokenSource struct {
	value atomic.Value
}

// NewTokenSource creates a token source seeded with the given token.
// An empty initial token means no member is signed in yet.
func NewTokenSource(initial string) *TokenSource {
	s := &TokenSource{}
	s.value.Store(initial)

	return s
}

// Token returns the current session token, or an empty string.
func (s *TokenSource) Token() string {
	token, _ := s.value.Load().(string)

	return token
}

// Set replaces the current session token.
func (s *TokenSource) Set(token string) {
	s.value.Store(token)
}

// Clear removes the current session token.
func (s *TokenSource) Clear() {
	s.value.Store("")
}
