// Package app wires the member API client, the authentication service, the
// client-side stores, and the realtime notifier together, and implements the
// interactive login and registration commands on top of them.
package app
