package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/pkg/logger"
)

// queueRetryAfter is the Retry-After hint sent when the device command queue
// is full, in seconds.
const queueRetryAfter = "1"

// errorResponse is the JSON envelope of every 4xx/5xx response.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewHTTPErrorHandler maps domain errors to status codes and renders them as
// errorResponse. Unexpected errors are logged and reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if errors.Is(err, domain.ErrCommandQueueFull) {
			c.Response().Header().Set("Retry-After", queueRetryAfter)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{
			Error:     msg,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Errors raised by echo and the handlers themselves.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUnrecognizedRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrRoleSwitchDisabled):
		return http.StatusForbidden, "role switching is disabled"
	case errors.Is(err, domain.ErrDeviceNotFound):
		return http.StatusNotFound, "device not found"
	case errors.Is(err, domain.ErrWorkOrderNotFound):
		return http.StatusNotFound, "work order not found"
	case errors.Is(err, domain.ErrApartmentNotFound):
		return http.StatusNotFound, "apartment not found"
	case errors.Is(err, domain.ErrDeviceOffline):
		return http.StatusConflict, "device is offline"
	case errors.Is(err, domain.ErrInvalidControl),
		errors.Is(err, domain.ErrDeviceReadOnly),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrCommandQueueFull):
		return http.StatusServiceUnavailable, "device command queue is full, retry later"
	}

	l := logger.FromContext(c.Request().Context(), log)
	l.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
