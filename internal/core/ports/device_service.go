package ports

import (
	"context"
	"time"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// DeviceCommand is a validated control request waiting to be applied.
type DeviceCommand struct {
	ID          string
	DeviceID    string
	DeviceName  string
	DeviceType  domain.DeviceType
	ApartmentID string
	Value       any
	IssuedBy    string
	IssuedAt    time.Time
}

// DeviceService validates and applies device control commands.
type DeviceService interface {
	// Control validates a command from identity against device deviceID and
	// returns it ready to be dispatched.
	Control(ctx context.Context, identity *domain.Identity, deviceID string, value any) (*DeviceCommand, error)
	// Apply executes a previously validated command.
	Apply(ctx context.Context, cmd DeviceCommand) error
}

// WorkOrderService moves work orders through their lifecycle.
type WorkOrderService interface {
	Transition(ctx context.Context, identity *domain.Identity, id string, next domain.WorkOrderStatus) (*domain.WorkOrder, error)
}
