// Package realtime delivers session events to the notice service over
// a websocket connection. The connection is dialed lazily on the first
// emit and reused afterwards.
package realtime
