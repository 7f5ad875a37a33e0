package realtime

//go:generate $MOCKGEN -source=notifier.go -destination=mocks/notifier_mock.go

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tradexhq/passport-cli/internal/logger"
)

// EventSessionEstablished announces a fresh session to the notice service.
// Its payload carries the member identifier and session token.
const EventSessionEstablished = "session:established"

// Notifier publishes events to the notice service.
type Notifier interface {
	// Emit sends a named event with a JSON payload.
	Emit(ctx context.Context, event string, payload any) error
	// Close shuts the underlying connection down.
	Close() error
}

// SessionEstablishedPayload is the payload of EventSessionEstablished.
type SessionEstablishedPayload struct {
	// MemberID is the unique identifier of the signed-in member.
	MemberID string `json:"memberId"`
	// Token is the session token.
	Token string `json:"token"`
}

// ErrNotifierClosed indicates an emit after Close.
var ErrNotifierClosed = errors.New("notifier is closed")

// envelope is the wire format of an emitted event.
type envelope struct {
	// Event is the event name.
	Event string `json:"event"`
	// Data is the event payload.
	Data any `json:"data"`
}

// SocketNotifier is a websocket-backed Notifier.
// The connection is dialed on the first Emit and kept for reuse.
type SocketNotifier struct {
	mu     sync.Mutex
	url    string
	dialer *websocket.Dialer
	conn   *websocket.Conn
	closed bool
}

// NewSocketNotifier creates a notifier for the given websocket URL.
func NewSocketNotifier(socketURL string) *SocketNotifier {
	return &SocketNotifier{
		url:    socketURL,
		dialer: websocket.DefaultDialer,
	}
}

// Emit sends a named event with a JSON payload, dialing the connection
// first when necessary.
func (n *SocketNotifier) Emit(ctx context.Context, event string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrNotifierClosed
	}

	if n.conn == nil {
		conn, _, err := n.dialer.DialContext(ctx, n.url, nil)
		if err != nil {
			return fmt.Errorf("failed to dial notice socket: %w", err)
		}

		n.conn = conn

		logger.Debugf(ctx, "Connected to notice socket at %s", n.url)
	}

	message := &envelope{
		Event: event,
		Data:  payload,
	}

	if err := n.conn.WriteJSON(message); err != nil {
		// Drop the connection so the next emit redials.
		n.conn.Close() //nolint:errcheck,gosec // Already handling a write failure.
		n.conn = nil

		return fmt.Errorf("failed to emit %q: %w", event, err)
	}

	return nil
}

// Close shuts the connection down. Further emits fail with ErrNotifierClosed.
func (n *SocketNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true

	if n.conn == nil {
		return nil
	}

	err := n.conn.Close()
	n.conn = nil

	return err
}
