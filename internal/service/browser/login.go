package browser

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tradexhq/passport-cli/internal/logger"
)

// waitForUserLogin navigates to the web login page and waits for the
// member to finish signing in, then lifts the session token cookie.
func (s *ServiceImpl) waitForUserLogin(ctx context.Context) (string, error) {
	logger.Infof(ctx, "Opening %s", webLoginURL)

	s.page.MustNavigate(webLoginURL)

	logger.Info(ctx, "")
	logger.Info(ctx, "Please complete the sign-in in the browser:")
	logger.Info(ctx, "")
	logger.Info(ctx, "1. Sign in with your account, phone or email as usual")
	logger.Info(ctx, "2. Stay on the platform's pages until sign-in completes")
	logger.Info(ctx, "3. Do NOT close the browser, the token is picked up automatically")
	logger.Info(ctx, "")
	logger.Info(ctx, "Waiting for sign-in to complete...")

	token, err := s.waitForLoginComplete(ctx)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "Sign-in completed")

	// Let the web session settle before the cookie is trusted.
	time.Sleep(sessionEstablishDelay)

	return token, nil
}

// waitForLoginComplete polls the page until the session cookie shows up,
// the member leaves the platform, the browser dies, or the wait times out.
func (s *ServiceImpl) waitForLoginComplete(ctx context.Context) (string, error) {
	var (
		startTime = time.Now()
		lastURL   string
	)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if time.Since(startTime) > maxLoginWaitTime {
			return "", fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		}

		if !s.isBrowserAlive(ctx) {
			return "", ErrBrowserClosed
		}

		currentURL, err := s.getCurrentURL(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get current URL: %w", err)
		}

		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		if err = s.validateLoginURL(currentURL); err != nil {
			return "", err
		}

		if token := s.getAuthCookie(ctx); token != "" {
			logger.Info(ctx, "Auth cookie detected")

			return token, nil
		}

		// Poll with a randomized pause so the checks don't look like a bot
		// hammering the page on a fixed beat.
		randomPollDelay()
	}
}

// validateLoginURL checks that the member is still on the platform's pages.
func (s *ServiceImpl) validateLoginURL(currentURL string) error {
	if !strings.Contains(currentURL, webDomain) {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	return nil
}

// randomPollDelay sleeps for a random duration between status checks.
func randomPollDelay() {
	//nolint:gosec // Weak random is fine for pacing status checks.
	delay := time.Duration(rand.Int64N(int64(pollMaxDelay-pollMinDelay))) + pollMinDelay
	time.Sleep(delay)
}
