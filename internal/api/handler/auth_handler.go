package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/api/middleware"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// CookieConfig describes the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	sessions ports.SessionService
	cookie   CookieConfig
}

func NewAuthHandler(sessions ports.SessionService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookie: cookie}
}

// Login makes the fixed identity of the requested role current.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials and requested role"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("unknown", "invalid").Inc()
		return err
	}

	res, err := h.sessions.Login(c.Request().Context(), middleware.SessionID(c), req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues(string(role), "rejected").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()

	h.setCookie(c, res.Token)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identity:      res.Session.Identity,
		Token:         res.Token,
		Redirect:      role.RootPath(),
	})
}

// Logout clears the caller's session. Calling it without a session succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      500  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}

	h.clearCookie(c)
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: false, Redirect: domain.LoginPath})
}

// SwitchRole replaces the caller's identity without credentials (demo only).
//
// @Summary      Switch role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      switchRoleRequest  true  "Target role"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/switch-role [post]
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	var req switchRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	res, err := h.sessions.SwitchRole(c.Request().Context(), middleware.SessionID(c), role)
	if err != nil {
		return err
	}
	metrics.RoleSwitchesTotal.WithLabelValues(string(role)).Inc()

	h.setCookie(c, res.Token)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identity:      res.Session.Identity,
		Token:         res.Token,
		Redirect:      role.RootPath(),
	})
}

// Me reports the caller's session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: session.IsAuthenticated(),
		Identity:      session.Identity,
	})
}

func (h *AuthHandler) setCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookie.TTL > 0 {
		cookie.MaxAge = int(h.cookie.TTL.Seconds())
	}
	c.SetCookie(cookie)
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
