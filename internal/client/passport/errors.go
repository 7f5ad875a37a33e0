package passport

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrRequestRejected indicates the API answered with a non-success envelope code.
	ErrRequestRejected = errors.New("request rejected by API")
	// ErrEmptyPublicKey indicates the public key endpoint returned no key material.
	ErrEmptyPublicKey = errors.New("public key endpoint returned no key")
	// ErrUnexpectedNoticeFormat indicates an unexpected unread notice response format.
	ErrUnexpectedNoticeFormat = errors.New("unexpected unread notice response format")
)

// APIError carries the envelope code and message of a rejected request.
type APIError struct {
	// Code is the envelope code returned by the API.
	Code int
	// Message is the human-readable rejection reason.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%v: code %d: %s", ErrRequestRejected, e.Code, e.Message)
}

// Unwrap makes APIError match ErrRequestRejected in errors.Is checks.
func (e *APIError) Unwrap() error {
	return ErrRequestRejected
}
