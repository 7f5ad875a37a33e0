// Package http provides custom HTTP transport utilities,
// including request/response logging and injection of the
// device identifier and session token headers.
// It is designed to enhance HTTP client functionality
// with debugging capabilities and request customization.
package http
