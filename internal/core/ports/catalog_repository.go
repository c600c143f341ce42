package ports

import (
	"context"
	"time"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// CatalogRepository serves the buildings, apartments, devices, work orders,
// activities and notifications rendered by the dashboards.
type CatalogRepository interface {
	Buildings(ctx context.Context) ([]domain.Building, error)
	Apartments(ctx context.Context) ([]domain.Apartment, error)
	Devices(ctx context.Context) ([]domain.Device, error)
	WorkOrders(ctx context.Context) ([]domain.WorkOrder, error)
	// Activities returns the feed, newest first.
	Activities(ctx context.Context) ([]domain.Activity, error)
	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)

	FindDevice(ctx context.Context, id string) (*domain.Device, error)
	UpdateDeviceValue(ctx context.Context, id string, value any, at time.Time) error

	FindWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error)
	UpdateWorkOrderStatus(ctx context.Context, id string, status domain.WorkOrderStatus, completedAt *time.Time) error

	AppendActivity(ctx context.Context, activity domain.Activity) error
}
