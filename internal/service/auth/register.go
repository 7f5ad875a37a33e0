package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/logger"
)

// PhoneRegistration is the input of a phone-based registration.
type PhoneRegistration struct {
	// Username is the chosen account name.
	Username string
	// Phone is the verified phone number.
	Phone string
	// Code is the verification code delivered to the phone.
	Code string
	// LoginPassword is the plaintext sign-in credential.
	LoginPassword string
	// TransactionPassword is the plaintext trading credential.
	TransactionPassword string
	// InviterPhone overrides the configured referrer, if set.
	InviterPhone string
}

// EmailRegistration is the input of an email-based registration.
type EmailRegistration struct {
	// Username is the chosen account name.
	Username string
	// Email is the verified email address.
	Email string
	// Code is the verification code delivered to the address.
	Code string
	// Password is the plaintext sign-in credential.
	Password string
}

// CheckUsernameAvailable fails with ErrDuplicateAccount for taken usernames.
func (s *ServiceImpl) CheckUsernameAvailable(ctx context.Context, username string) error {
	registered, err := s.client.CheckAccountRegistration(ctx, username)
	if err != nil {
		return err
	}

	if registered {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, username)
	}

	return nil
}

// CheckEmailAvailable fails with ErrAlreadyRegistered for bound addresses.
func (s *ServiceImpl) CheckEmailAvailable(ctx context.Context, email string) error {
	registered, err := s.client.CheckEmailRegistration(ctx, email, "", passport.BizTypeRegister)
	if err != nil {
		return err
	}

	if registered {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, email)
	}

	return nil
}

// RegisterWithPhone creates a member from a verified phone number.
// The number's registration status is re-checked in the registration
// context first; numbers already bound to a member abort the flow before
// the registration endpoint is reached. Both credentials are encrypted
// before transmission.
func (s *ServiceImpl) RegisterWithPhone(
	ctx context.Context,
	registration *PhoneRegistration,
) (*passport.Session, error) {
	if !s.registerGuard.TryAcquire() {
		return nil, ErrOperationInFlight
	}
	defer s.registerGuard.Release()

	registered, err := s.client.CheckMobileRegistration(
		ctx, registration.Phone, registration.Code, passport.BizTypeRegister)
	if err != nil {
		return nil, err
	}

	if registered {
		return nil, fmt.Errorf("%w: phone %s", ErrAlreadyRegistered, registration.Phone)
	}

	if err := s.CheckUsernameAvailable(ctx, registration.Username); err != nil {
		return nil, err
	}

	loginPassword, err := s.encoder.Encode(ctx, registration.LoginPassword)
	if err != nil {
		return nil, err
	}

	transactionPassword, err := s.encoder.Encode(ctx, registration.TransactionPassword)
	if err != nil {
		return nil, err
	}

	inviterPhone := registration.InviterPhone
	if inviterPhone == "" {
		inviterPhone = s.cfg.InviterPhone
	}

	session, err := s.client.Register(ctx, &passport.RegisterRequest{
		Username:            registration.Username,
		Phone:               registration.Phone,
		Code:                registration.Code,
		InviterPhone:        inviterPhone,
		LoginPassword:       loginPassword,
		TransactionPassword: transactionPassword,
		ExclusiveDomain:     s.cfg.ExclusiveDomain,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Registered member %s with phone %s", registration.Username, registration.Phone)

	return session, nil
}

// RegisterWithEmail creates a member from a verified email address.
// The verification code is confirmed first; the transaction password is
// submitted empty and set by the member later.
func (s *ServiceImpl) RegisterWithEmail(
	ctx context.Context,
	registration *EmailRegistration,
) (*passport.Session, error) {
	if !s.registerGuard.TryAcquire() {
		return nil, ErrOperationInFlight
	}
	defer s.registerGuard.Release()

	if err := s.client.VerifyEmailCode(ctx, registration.Email, registration.Code); err != nil {
		if errors.Is(err, passport.ErrRequestRejected) {
			return nil, fmt.Errorf("%w: %v", ErrVerificationMismatch, err) //nolint:errorlint // The sentinel must be the matched error.
		}

		return nil, err
	}

	password, err := s.encoder.Encode(ctx, registration.Password)
	if err != nil {
		return nil, err
	}

	session, err := s.client.RegisterByEmail(ctx, &passport.EmailRegisterRequest{
		Username:            registration.Username,
		Email:               registration.Email,
		Code:                registration.Code,
		Password:            password,
		TransactionPassword: "",
		ExclusiveDomain:     s.cfg.ExclusiveDomain,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Registered member %s with email %s", registration.Username, registration.Email)

	return session, nil
}
