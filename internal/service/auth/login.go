package auth

import (
	"context"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/logger"
)

// MobileLoginResult is the outcome of a phone code sign-in attempt.
type MobileLoginResult struct {
	// NeedsRegistration is true when no member is bound to the number.
	// Session is nil in that case and no sign-in request was made.
	NeedsRegistration bool
	// Session is the established session, nil when registration is needed.
	Session *passport.Session
}

// LoginWithAccount signs in with a username and plaintext password.
// The password is encrypted with the server's public key before it
// leaves the process.
func (s *ServiceImpl) LoginWithAccount(ctx context.Context, username, password string) (*passport.Session, error) {
	if !s.loginGuard.TryAcquire() {
		return nil, ErrOperationInFlight
	}
	defer s.loginGuard.Release()

	encoded, err := s.encoder.Encode(ctx, password)
	if err != nil {
		return nil, err
	}

	session, err := s.client.LoginByAccount(ctx, &passport.AccountLoginRequest{
		Username:        username,
		Password:        encoded,
		ExclusiveDomain: s.cfg.ExclusiveDomain,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Signed in as %s", username)

	return session, nil
}

// LoginWithMobile signs in with a phone number and a verification code.
// The number's registration status is checked first; unknown numbers are
// flagged for registration and no sign-in request is made. The transaction
// password is passed through as entered and may be empty.
func (s *ServiceImpl) LoginWithMobile(
	ctx context.Context,
	phone, code, transactionPassword string,
) (*MobileLoginResult, error) {
	if !s.loginGuard.TryAcquire() {
		return nil, ErrOperationInFlight
	}
	defer s.loginGuard.Release()

	registered, err := s.client.CheckMobileRegistration(ctx, phone, code, passport.BizTypeLogin)
	if err != nil {
		return nil, err
	}

	if !registered {
		logger.Infof(ctx, "Phone %s is not registered yet", phone)

		return &MobileLoginResult{NeedsRegistration: true}, nil
	}

	session, err := s.client.LoginByMobile(ctx, &passport.MobileLoginRequest{
		Phone:               phone,
		Code:                code,
		TransactionPassword: transactionPassword,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Signed in with phone %s", phone)

	return &MobileLoginResult{Session: session}, nil
}

// LoginWithEmail signs in with an email address and a verification code.
func (s *ServiceImpl) LoginWithEmail(ctx context.Context, email, code string) (*passport.Session, error) {
	if !s.loginGuard.TryAcquire() {
		return nil, ErrOperationInFlight
	}
	defer s.loginGuard.Release()

	registered, err := s.client.CheckEmailRegistration(ctx, email, code, passport.BizTypeLogin)
	if err != nil {
		return nil, err
	}

	if !registered {
		return nil, ErrNotRegistered
	}

	session, err := s.client.LoginByEmail(ctx, &passport.EmailLoginRequest{
		Email: email,
		Code:  code,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Signed in with email %s", email)

	return session, nil
}
