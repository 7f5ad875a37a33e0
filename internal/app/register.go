package app

import (
	"context"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/logger"
	"github.com/tradexhq/passport-cli/internal/service/auth"
)

// RegisterInput carries the registration values collected from flags.
// Empty fields are prompted for interactively.
type RegisterInput struct {
	// Username is the chosen account name.
	Username string
	// Phone selects the phone registration path.
	Phone string
	// Email selects the email registration path instead.
	Email string
	// Code is the verification code, requested interactively when empty.
	Code string
	// Password is the sign-in credential.
	Password string
	// TransactionPassword is the trading credential (phone path only).
	TransactionPassword string
	// InviterPhone overrides the configured referrer, if set.
	InviterPhone string
}

// ExecuteRegister creates a member account over the phone or email path.
func ExecuteRegister(ctx context.Context, cfg *config.Config, input *RegisterInput) {
	env, err := newEnvironment(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	defer env.Close()

	if input.Username == "" {
		input.Username = promptRequired(ctx, "Username: ")
	}

	// The username check runs up front so the member is not asked for
	// codes and passwords that a taken name would throw away.
	if err = env.auth.CheckUsernameAvailable(ctx, input.Username); err != nil {
		logger.Fatalf(ctx, "Registration failed: %v", err)
	}

	if input.Email != "" {
		registerWithEmail(ctx, env, input)

		return
	}

	registerWithPhone(ctx, env, input)
}

func registerWithPhone(ctx context.Context, env *environment, input *RegisterInput) {
	if input.Phone == "" {
		input.Phone = promptRequired(ctx, "Phone number: ")
	}

	if input.Code == "" {
		result, err := env.auth.SendSMSCode(ctx, env.cfg.DefaultSMSArea, input.Phone)
		if err != nil {
			logger.Fatalf(ctx, "Failed to request verification code: %v", err)
		}

		announceDispatch(ctx, result)
		renderCountdown(env.auth.SMSResendCountdown())

		input.Code = promptRequired(ctx, "Verification code: ")
	}

	if input.Password == "" {
		input.Password = promptRequired(ctx, "Login password: ")
	}

	if input.TransactionPassword == "" {
		input.TransactionPassword = promptRequired(ctx, "Transaction password: ")
	}

	session, err := env.auth.RegisterWithPhone(ctx, &auth.PhoneRegistration{
		Username:            input.Username,
		Phone:               input.Phone,
		Code:                input.Code,
		LoginPassword:       input.Password,
		TransactionPassword: input.TransactionPassword,
		InviterPhone:        input.InviterPhone,
	})
	if err != nil {
		logger.Fatalf(ctx, "Registration failed: %v", err)
	}

	logger.Infof(ctx, "Account %s created", input.Username)

	finishLogin(ctx, env, session)
}

func registerWithEmail(ctx context.Context, env *environment, input *RegisterInput) {
	if err := env.auth.CheckEmailAvailable(ctx, input.Email); err != nil {
		logger.Fatalf(ctx, "Registration failed: %v", err)
	}

	if input.Code == "" {
		result, err := env.auth.SendEmailCode(ctx, input.Email)
		if err != nil {
			logger.Fatalf(ctx, "Failed to request verification code: %v", err)
		}

		announceDispatch(ctx, result)
		renderCountdown(env.auth.EmailResendCountdown())

		input.Code = promptRequired(ctx, "Verification code: ")
	}

	if input.Password == "" {
		input.Password = promptRequired(ctx, "Login password: ")
	}

	session, err := env.auth.RegisterWithEmail(ctx, &auth.EmailRegistration{
		Username: input.Username,
		Email:    input.Email,
		Code:     input.Code,
		Password: input.Password,
	})
	if err != nil {
		logger.Fatalf(ctx, "Registration failed: %v", err)
	}

	logger.Infof(ctx, "Account %s created", input.Username)
	logger.Info(ctx, "Set a transaction password in the member area before trading")

	finishLogin(ctx, env, session)
}
