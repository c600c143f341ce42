package ports

import (
	"context"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// ViewFilter carries the optional query parameters a view understands.
type ViewFilter struct {
	Room     string
	Type     string
	Status   string
	Building string
}

// Stat is a single headline figure of a dashboard.
type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// View is a rendered, role-scoped page.
type View struct {
	Name       string            `json:"view"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle,omitempty"`
	ActivePath string            `json:"active_path"`
	Identity   *domain.Identity  `json:"identity"`
	Navigation []domain.NavGroup `json:"navigation"`
	Stats      []Stat            `json:"stats,omitempty"`
	Content    any               `json:"content"`
}

// DashboardService builds the views of every role tree.
type DashboardService interface {
	// Render builds the view at path for identity. Paths that are not a
	// navigation destination of identity's role render the role dashboard.
	Render(ctx context.Context, identity *domain.Identity, path string, filter ViewFilter) (*View, error)
}
