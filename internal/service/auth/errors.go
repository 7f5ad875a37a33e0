package auth

import "errors"

var (
	// ErrOperationInFlight indicates a flow submission while another one is running.
	ErrOperationInFlight = errors.New("operation already in flight")
	// ErrDispatchInFlight indicates a code request while another one is running.
	ErrDispatchInFlight = errors.New("code dispatch already in flight")
	// ErrResendCooldown indicates a code request inside the resend cooldown window.
	ErrResendCooldown = errors.New("resend cooldown is active")
	// ErrInvalidDestination indicates a phone number or email address that fails local format checks.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrInvalidPublicKey indicates public key material that cannot be used for encryption.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrDuplicateAccount indicates a registration with a username that is already taken.
	ErrDuplicateAccount = errors.New("account name is already taken")
	// ErrAlreadyRegistered indicates a registration with a destination bound to an existing member.
	ErrAlreadyRegistered = errors.New("destination is already registered")
	// ErrNotRegistered indicates a sign-in with a destination no member is bound to.
	ErrNotRegistered = errors.New("destination is not registered")
	// ErrVerificationMismatch indicates a verification code the server did not accept.
	ErrVerificationMismatch = errors.New("verification code was not accepted")
)
