// Package passport provides a Go client for the Tradex member API,
// covering sign-in, registration, verification code delivery,
// public key retrieval, and member profile access.
// It handles HTTP/GraphQL communication with token and device header
// injection, response envelope decoding, and structured error handling
// for rejected requests.
package passport
