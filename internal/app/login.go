package app

import (
	"context"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/logger"
	"github.com/tradexhq/passport-cli/internal/service/browser"
	"github.com/tradexhq/passport-cli/internal/utils"
)

// balanceDecimals is the precision amounts are rendered with.
const balanceDecimals = 2

// ExecuteAccountLogin signs in with a username and password.
func ExecuteAccountLogin(ctx context.Context, cfg *config.Config, username, password string) {
	env, err := newEnvironment(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	defer env.Close()

	if username == "" {
		username = promptRequired(ctx, "Username: ")
	}

	if password == "" {
		password = promptRequired(ctx, "Password: ")
	}

	session, err := env.auth.LoginWithAccount(ctx, username, password)
	if err != nil {
		logger.Fatalf(ctx, "Login failed: %v", err)
	}

	finishLogin(ctx, env, session)
}

// ExecuteMobileLogin signs in with a phone number and a verification code.
// With no code given, one is requested and read from the terminal. The
// transaction password is optional and forwarded as entered.
func ExecuteMobileLogin(ctx context.Context, cfg *config.Config, phone, code, transactionPassword string) {
	env, err := newEnvironment(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	defer env.Close()

	if phone == "" {
		phone = promptRequired(ctx, "Phone number: ")
	}

	if code == "" {
		result, sendErr := env.auth.SendSMSCode(ctx, cfg.DefaultSMSArea, phone)
		if sendErr != nil {
			logger.Fatalf(ctx, "Failed to request verification code: %v", sendErr)
		}

		announceDispatch(ctx, result)
		renderCountdown(env.auth.SMSResendCountdown())

		code = promptRequired(ctx, "Verification code: ")
	}

	result, err := env.auth.LoginWithMobile(ctx, phone, code, transactionPassword)
	if err != nil {
		logger.Fatalf(ctx, "Login failed: %v", err)
	}

	if result.NeedsRegistration {
		logger.Warnf(ctx, "Phone %s is not registered yet", phone)
		logger.Infof(ctx, "Run 'passport-cli register --phone %s' to create an account", phone)

		return
	}

	finishLogin(ctx, env, result.Session)
}

// ExecuteEmailLogin signs in with an email address and a verification code.
// With no code given, one is requested and read from the terminal.
func ExecuteEmailLogin(ctx context.Context, cfg *config.Config, email, code string) {
	env, err := newEnvironment(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	defer env.Close()

	if email == "" {
		email = promptRequired(ctx, "Email address: ")
	}

	if code == "" {
		result, sendErr := env.auth.SendEmailCode(ctx, email)
		if sendErr != nil {
			logger.Fatalf(ctx, "Failed to request verification code: %v", sendErr)
		}

		announceDispatch(ctx, result)
		renderCountdown(env.auth.EmailResendCountdown())

		code = promptRequired(ctx, "Verification code: ")
	}

	session, err := env.auth.LoginWithEmail(ctx, email, code)
	if err != nil {
		logger.Fatalf(ctx, "Login failed: %v", err)
	}

	finishLogin(ctx, env, session)
}

// ExecuteBrowserLogin signs in through the platform's web login in a
// visible browser and persists the lifted session token.
func ExecuteBrowserLogin(ctx context.Context, cfg *config.Config) {
	browserService, err := browser.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize browser service: %v", err)
	}

	token, err := browserService.LoginAndExtractToken(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Browser login failed: %v", err)
	}

	cfg.AuthToken = token

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Info(ctx, "Session token saved")

	// The browser flow yields a token without a session payload,
	// so the profile is fetched directly to confirm the token works.
	env, err := newEnvironment(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	defer env.Close()

	profile, err := env.client.GetMemberProfile(ctx)
	if err != nil {
		logger.Warnf(ctx, "Could not verify the token against the profile endpoint: %v", err)

		return
	}

	printProfile(ctx, profile, env.messages.Unread())
}

// finishLogin runs the post-authentication sequence, persists the token,
// and prints the member summary.
func finishLogin(ctx context.Context, env *environment, session *passport.Session) {
	if err := env.synchronizer.Establish(ctx, session); err != nil {
		logger.Fatalf(ctx, "Failed to synchronize session state: %v", err)
	}

	env.cfg.AuthToken = session.Token

	if err := config.SaveConfig(env.cfg); err != nil {
		logger.Warnf(ctx, "Failed to persist session token: %v", err)
	}

	printProfile(ctx, env.userInfo.Current(), env.messages.Unread())
}

// printProfile prints the signed-in member summary.
func printProfile(ctx context.Context, profile *passport.MemberProfile, unread int) {
	if profile == nil {
		return
	}

	logger.Infof(ctx, "Signed in as %s (member %s)", profile.Username, profile.MemberID)
	logger.Infof(ctx, "Balance: %s (frozen: %s)",
		utils.FormatAmount(profile.Balance, balanceDecimals),
		utils.FormatAmount(profile.FrozenBalance, balanceDecimals))

	if !profile.RealNameVerified {
		logger.Info(ctx, "Identity verification is still pending")
	}

	if unread > 0 {
		logger.Infof(ctx, "You have %d unread notices", unread)
	}
}
