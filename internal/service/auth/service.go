package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/config"
)

// Service provides the member-facing authentication flows.
type Service interface {
	// LoginWithAccount signs in with a username and plaintext password.
	LoginWithAccount(ctx context.Context, username, password string) (*passport.Session, error)
	// LoginWithMobile signs in with a phone number and a verification code.
	// Unknown numbers come back flagged for registration instead of signed in.
	// The transaction password is passed through as entered and may be empty.
	LoginWithMobile(ctx context.Context, phone, code, transactionPassword string) (*MobileLoginResult, error)
	// LoginWithEmail signs in with an email address and a verification code.
	LoginWithEmail(ctx context.Context, email, code string) (*passport.Session, error)
	// RegisterWithPhone creates a member from a verified phone number.
	RegisterWithPhone(ctx context.Context, registration *PhoneRegistration) (*passport.Session, error)
	// RegisterWithEmail creates a member from a verified email address.
	RegisterWithEmail(ctx context.Context, registration *EmailRegistration) (*passport.Session, error)
	// CheckUsernameAvailable fails with ErrDuplicateAccount for taken usernames.
	CheckUsernameAvailable(ctx context.Context, username string) error
	// CheckEmailAvailable fails with ErrAlreadyRegistered for bound addresses.
	CheckEmailAvailable(ctx context.Context, email string) error
	// SendSMSCode requests a verification code for a phone number.
	SendSMSCode(ctx context.Context, area, phone string) (*DispatchResult, error)
	// SendEmailCode requests a verification code for an email address.
	SendEmailCode(ctx context.Context, email string) (*DispatchResult, error)
	// SMSResendCountdown exposes the SMS channel's resend countdown.
	SMSResendCountdown() *Countdown
	// EmailResendCountdown exposes the email channel's resend countdown.
	EmailResendCountdown() *Countdown
}

// ServiceImpl implements the authentication flows on top of the member API.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the member API client.
	client passport.Client
	// encoder encrypts credentials before transmission.
	encoder CredentialEncoder
	// dispatcher requests verification codes.
	dispatcher CodeDispatcher
	// loginGuard drops concurrent sign-in attempts.
	loginGuard OperationGuard
	// registerGuard drops concurrent registration attempts.
	registerGuard OperationGuard
}

// NewService creates an authentication service with dependency-injected components.
func NewService(
	cfg *config.Config,
	client passport.Client,
	encoder CredentialEncoder,
	dispatcher CodeDispatcher,
) Service {
	return &ServiceImpl{
		cfg:        cfg,
		client:     client,
		encoder:    encoder,
		dispatcher: dispatcher,
	}
}

// SendSMSCode requests a verification code for a phone number.
func (s *ServiceImpl) SendSMSCode(ctx context.Context, area, phone string) (*DispatchResult, error) {
	return s.dispatcher.SendSMS(ctx, area, phone)
}

// SendEmailCode requests a verification code for an email address.
func (s *ServiceImpl) SendEmailCode(ctx context.Context, email string) (*DispatchResult, error) {
	return s.dispatcher.SendEmail(ctx, email)
}

// SMSResendCountdown exposes the SMS channel's resend countdown.
func (s *ServiceImpl) SMSResendCountdown() *Countdown {
	return s.dispatcher.SMSCountdown()
}

// EmailResendCountdown exposes the email channel's resend countdown.
func (s *ServiceImpl) EmailResendCountdown() *Countdown {
	return s.dispatcher.EmailCountdown()
}
