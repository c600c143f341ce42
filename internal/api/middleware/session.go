package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// Context keys set by Session.
const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Service    ports.SessionService
	Tokens     ports.TokenIssuer
	CookieName string
}

// Session resolves the caller's session from the session cookie or an
// Authorization bearer token and stores it in the context. Missing or invalid
// tokens yield the anonymous session; only store failures are errors.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if raw := tokenFrom(c, cfg.CookieName); raw != "" {
				if parsed, err := cfg.Tokens.Parse(raw); err == nil {
					sid = parsed
				}
			}

			session, err := cfg.Service.Current(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set(sessionIDKey, sid)
			c.Set(sessionKey, session)
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentSession returns the session stored by Session, or the anonymous
// session when the middleware did not run.
func CurrentSession(c echo.Context) *domain.Session {
	if s, ok := c.Get(sessionKey).(*domain.Session); ok && s != nil {
		return s
	}
	return &domain.Session{}
}

// SessionID returns the id carried by the caller's token, which may refer to
// a session that no longer exists.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}
