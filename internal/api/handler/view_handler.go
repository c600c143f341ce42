package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/api/middleware"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

const demoNote = "Demo mode: any email and password are accepted. Pick a role to explore its dashboard."

// ViewHandler serves the navigable views: the root resolver, the login view,
// the role view trees and the not-found view.
type ViewHandler struct {
	dashboards ports.DashboardService
}

func NewViewHandler(dashboards ports.DashboardService) *ViewHandler {
	return &ViewHandler{dashboards: dashboards}
}

// Root sends the caller to their role root, or to the login view.
//
// @Summary      Resolve the landing view
// @Tags         views
// @Success      302
// @Router       / [get]
func (h *ViewHandler) Root(c echo.Context) error {
	session := middleware.CurrentSession(c)
	if !session.IsAuthenticated() {
		return c.Redirect(http.StatusFound, domain.LoginPath)
	}
	return c.Redirect(http.StatusFound, session.Role().RootPath())
}

// Login renders the login view.
//
// @Summary      Login view
// @Tags         views
// @Produce      json
// @Success      200  {object}  loginViewResponse
// @Router       /login [get]
func (h *ViewHandler) Login(c echo.Context) error {
	roles := make([]roleOption, 0, len(domain.AllRoles))
	for _, r := range domain.AllRoles {
		roles = append(roles, roleOption{Value: r, Label: r.Label(), Description: r.Description()})
	}

	metrics.ViewsRenderedTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, loginViewResponse{
		Name:     "login",
		Roles:    roles,
		DemoNote: demoNote,
		Identity: middleware.CurrentSession(c).Identity,
	})
}

// Role renders the view at the request path inside the caller's role tree.
// It is mounted behind the role guard, so the caller's role owns the tree.
//
// @Summary      Role view
// @Description  Renders a view of the admin, homeowner or maintenance tree. Unauthenticated callers are redirected to /login, callers of another role to their own root.
// @Tags         views
// @Produce      json
// @Param        room      query     string  false  "Room filter (homeowner devices)"
// @Param        type      query     string  false  "Device type filter"
// @Param        status    query     string  false  "Status filter (inventory, orders)"
// @Param        building  query     string  false  "Building filter (apartments, floors)"
// @Success      200       {object}  ports.View
// @Success      302
// @Router       /{role}/{section} [get]
func (h *ViewHandler) Role(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter := ports.ViewFilter{
		Room:     c.QueryParam("room"),
		Type:     c.QueryParam("type"),
		Status:   c.QueryParam("status"),
		Building: c.QueryParam("building"),
	}

	view, err := h.dashboards.Render(c.Request().Context(), identity, c.Request().URL.Path, filter)
	if err != nil {
		return err
	}

	metrics.ViewsRenderedTotal.WithLabelValues(view.Name).Inc()
	return c.JSON(http.StatusOK, view)
}

// NotFound renders the catch-all view. It never redirects.
func (h *ViewHandler) NotFound(c echo.Context) error {
	home := domain.LoginPath
	if session := middleware.CurrentSession(c); session.IsAuthenticated() {
		home = session.Role().RootPath()
	}

	metrics.ViewsRenderedTotal.WithLabelValues("not_found").Inc()
	return c.JSON(http.StatusNotFound, notFoundResponse{
		Name: "not_found",
		Path: c.Request().URL.Path,
		Home: home,
	})
}
