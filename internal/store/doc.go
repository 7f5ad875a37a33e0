// Package store holds the client-side state of a signed-in member:
// the session token shared with the HTTP transport, ephemeral
// session-scoped markers, the cached member profile, and the unread
// notice counter. All stores are safe for concurrent use.
package store
