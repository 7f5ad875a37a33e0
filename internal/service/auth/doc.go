// Package auth orchestrates the client side of member authentication:
// credential encryption against the server's public key, verification
// code dispatch with resend cooldowns, the sign-in and registration
// flows, and the post-authentication synchronization sequence.
//
// Flows are guarded against concurrent submission: while one attempt is
// in flight, further submissions return ErrOperationInFlight and leave
// no other trace, matching the single-flight behavior of the web client.
package auth
