package auth

//go:generate $MOCKGEN -source=sync.go -destination=mocks/sync_mock.go

import (
	"context"
	"fmt"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/logger"
	"github.com/tradexhq/passport-cli/internal/realtime"
)

// SessionClearer wipes ephemeral session-scoped state.
type SessionClearer interface {
	Clear()
}

// SessionBinder binds a fresh session and refreshes the member profile.
type SessionBinder interface {
	Set(session *passport.Session)
	Refresh(ctx context.Context) error
}

// ReadStatusRefresher refreshes the unread notice counter.
type ReadStatusRefresher interface {
	RefreshReadStatus(ctx context.Context) error
}

// Synchronizer brings client-side state in line with a fresh session.
type Synchronizer interface {
	// Establish runs the post-authentication sequence for a session.
	Establish(ctx context.Context, session *passport.Session) error
}

// SynchronizerImpl runs the post-authentication sequence in a fixed order:
// clear ephemeral state, bind the session, refresh the profile, refresh
// the unread counter, announce the session over the notice socket.
// The first failing step aborts the sequence; completed steps stay done.
type SynchronizerImpl struct {
	// sessions holds the ephemeral session-scoped markers.
	sessions SessionClearer
	// userInfo holds the session and member profile.
	userInfo SessionBinder
	// messages holds the unread notice counter.
	messages ReadStatusRefresher
	// notifier publishes events to the notice service, nil when disabled.
	notifier realtime.Notifier
}

// NewSynchronizer creates a synchronizer over the given stores.
// A nil notifier disables the realtime announcement step.
func NewSynchronizer(
	sessions SessionClearer,
	userInfo SessionBinder,
	messages ReadStatusRefresher,
	notifier realtime.Notifier,
) *SynchronizerImpl {
	return &SynchronizerImpl{
		sessions: sessions,
		userInfo: userInfo,
		messages: messages,
		notifier: notifier,
	}
}

// Establish runs the post-authentication sequence for a session.
func (s *SynchronizerImpl) Establish(ctx context.Context, session *passport.Session) error {
	s.sessions.Clear()
	s.userInfo.Set(session)

	if err := s.userInfo.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh member profile: %w", err)
	}

	if err := s.messages.RefreshReadStatus(ctx); err != nil {
		return fmt.Errorf("failed to refresh notice status: %w", err)
	}

	if s.notifier != nil {
		payload := &realtime.SessionEstablishedPayload{
			MemberID: session.MemberID,
			Token:    session.Token,
		}

		if err := s.notifier.Emit(ctx, realtime.EventSessionEstablished, payload); err != nil {
			return fmt.Errorf("failed to announce session: %w", err)
		}
	}

	logger.Debugf(ctx, "Session established for member %s", session.MemberID)

	return nil
}
