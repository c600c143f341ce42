package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// Guard applies the route guard to every route it wraps. Redirect decisions
// answer 302 without reaching the handler.
func Guard(tree string, req domain.RouteRequirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := domain.CanAccess(CurrentSession(c).Identity, req)
			metrics.RouteDecisionsTotal.WithLabelValues(tree, decision.Kind.String()).Inc()

			if decision.Kind != domain.Allow {
				return c.Redirect(http.StatusFound, decision.Target)
			}
			return next(c)
		}
	}
}

// RoleTree guards the view tree of role.
func RoleTree(role domain.Role) echo.MiddlewareFunc {
	return Guard(string(role), domain.RoleTreeRequirement(role))
}
