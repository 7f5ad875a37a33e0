package store

import (
	"context"
	"errors"
	"sync"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/logger"
)

// ErrNoSession indicates an operation that needs a signed-in member was
// attempted without one.
var ErrNoSession = errors.New("no active session")

// UserInfoStore holds the session and profile of the signed-in member.
// Binding a session also publishes its token to the shared TokenSource,
// so the HTTP transport picks it up immediately.
type UserInfoStore struct {
	mu      sync.RWMutex
	client  passport.Client
	tokens  *TokenSource
	session *passport.Session
	profile *passport.MemberProfile
}

// NewUserInfoStore creates a store backed by the given API client and token source.
func NewUserInfoStore(client passport.Client, tokens *TokenSource) *UserInfoStore {
	return &UserInfoStore{
		client: client,
		tokens: tokens,
	}
}

// Set binds a session returned by sign-in or registration.
// A nil session is ignored.
func (s *UserInfoStore) Set(session *passport.Session) {
	if session == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	s.tokens.Set(session.Token)
}

// Refresh fetches the member profile from the API and caches it.
func (s *UserInfoStore) Refresh(ctx context.Context) error {
	if s.Session() == nil {
		return ErrNoSession
	}

	profile, err := s.client.GetMemberProfile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	logger.Debugf(ctx, "Refreshed profile for member %s", profile.MemberID)

	return nil
}

// Session returns the bound session, or nil.
func (s *UserInfoStore) Session() *passport.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Current returns the cached member profile, or nil before the first Refresh.
func (s *UserInfoStore) Current() *passport.MemberProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// Reset drops the session, profile, and published token.
func (s *UserInfoStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.profile = nil
	s.tokens.Clear()
}
