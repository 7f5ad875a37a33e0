package browser

import (
	"context"

	"github.com/tradexhq/passport-cli/internal/logger"
)

// getAuthCookie returns the session token cookie value if it exists.
func (s *ServiceImpl) getAuthCookie(ctx context.Context) string {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "getAuthCookie panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies([]string{webHomeURL})
	if err != nil {
		return ""
	}

	for _, cookie := range cookies {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}

	return ""
}

// extractToken reads the session token out of the browser cookies,
// listing what was found when the expected cookie is missing.
func (s *ServiceImpl) extractToken(ctx context.Context) (string, error) {
	logger.Debug(ctx, "Fetching cookies from browser")

	cookies := s.page.MustCookies()
	logger.Debugf(ctx, "Found %d cookies", len(cookies))

	for _, cookie := range cookies {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}

	logger.Error(ctx, "Auth cookie not found, available cookies:")

	for _, cookie := range cookies {
		logger.Errorf(ctx, "%s (domain: %s)", cookie.Name, cookie.Domain)
	}

	return "", ErrAuthCookieNotFound
}
