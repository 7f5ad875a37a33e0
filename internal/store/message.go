package store

import (
	"context"
	"sync"

	"github.com/tradexhq/passport-cli/internal/client/passport"
)

// MessageStore tracks the signed-in member's unread notice counter.
type MessageStore struct {
	mu       sync.RWMutex
	client   passport.Client
	userInfo *UserInfoStore
	unread   int
}

// NewMessageStore creates a store backed by the given API client.
// The member identity comes from the user info store.
func NewMessageStore(client passport.Client, userInfo *UserInfoStore) *MessageStore {
	return &MessageStore{
		client:   client,
		userInfo: userInfo,
	}
}

// RefreshReadStatus fetches the unread notice counter for the signed-in member.
func (s *MessageStore) RefreshReadStatus(ctx context.Context) error {
	session := s.userInfo.Session()
	if session == nil {
		return ErrNoSession
	}

	status, err := s.client.GetUnreadNoticeStatus(ctx, session.MemberID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.unread = status.Total
	s.mu.Unlock()

	return nil
}

// Unread returns the last fetched unread notice count.
func (s *MessageStore) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unread
}
