package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/api/middleware"
	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// ctxIdentity returns the authenticated identity resolved by the Session
// middleware. Guarded routes always have one; the check is a fast-fail for
// handlers mounted without the guard.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	session := middleware.CurrentSession(c)
	if !session.IsAuthenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return session.Identity, nil
}
