package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/tradexhq/passport-cli/internal/config"
	"github.com/tradexhq/passport-cli/internal/logger"
)

const (
	// browserSlowMotionDelay slows browser actions down for visibility in debug mode.
	browserSlowMotionDelay = 200 * time.Millisecond

	// webHomeURL is the platform's web landing page.
	webHomeURL = "https://www.tradex.pro/"

	// webLoginURL is the dedicated web login page.
	webLoginURL = "https://www.tradex.pro/login"

	// webDomain is the platform's web domain.
	webDomain = "tradex.pro"

	// authCookieName is the cookie the web client stores the session token in.
	authCookieName = "x-auth-token"

	// maxLoginWaitTime is the maximum time to wait for the member to finish signing in.
	maxLoginWaitTime = 10 * time.Minute

	// sessionEstablishDelay lets the web session settle before the cookie is read out.
	sessionEstablishDelay = 2 * time.Second

	// pollMinDelay is the minimum pause between login status checks.
	pollMinDelay = 500 * time.Millisecond
	// pollMaxDelay is the maximum pause between login status checks.
	pollMaxDelay = 2 * time.Second

	// browserCleanupDelay lets Chrome release file locks before the profile is removed.
	browserCleanupDelay = 500 * time.Millisecond
)

var (
	// ErrLoginTimeout is returned when the sign-in takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed before sign-in completes.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the member leaves the platform's domain.
	ErrNavigatedAway = errors.New("user navigated away from login flow")

	// ErrAuthCookieNotFound is returned when no session cookie shows up after sign-in.
	ErrAuthCookieNotFound = errors.New("auth cookie not found - login may have failed")
)

// Service provides browser-assisted authentication.
type Service interface {
	// LoginAndExtractToken opens a browser, waits for the member to sign in,
	// then extracts the session token from the auth cookie.
	LoginAndExtractToken(ctx context.Context) (string, error)
}

// ServiceImpl drives a visible rod browser through the web login.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the throwaway profile directory for cleanup.
	tempDir string
}

// NewService creates a browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	return &ServiceImpl{
		cfg: cfg,
	}, nil
}

// LoginAndExtractToken opens a browser, waits for the member to sign in,
// then extracts the session token from the auth cookie.
func (s *ServiceImpl) LoginAndExtractToken(ctx context.Context) (string, error) {
	logger.Info(ctx, "Starting browser-assisted sign-in")

	if err := s.initBrowser(ctx); err != nil {
		return "", fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	token, err := s.waitForUserLogin(ctx)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	logger.Info(ctx, "Session token extracted successfully")

	return token, nil
}
