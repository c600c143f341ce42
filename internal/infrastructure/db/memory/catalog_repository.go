package memory

import (
	"context"
	"sync"
	"time"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/infrastructure/fixtures"
)

// CatalogRepository keeps the whole catalog in process memory. Every read
// returns copies, so callers may modify results freely.
type CatalogRepository struct {
	mu   sync.RWMutex
	data fixtures.Snapshot
}

func NewCatalogRepository(seed fixtures.Snapshot) *CatalogRepository {
	return &CatalogRepository{data: seed}
}

func (r *CatalogRepository) Buildings(_ context.Context) ([]domain.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Building(nil), r.data.Buildings...), nil
}

func (r *CatalogRepository) Apartments(_ context.Context) ([]domain.Apartment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Apartment(nil), r.data.Apartments...), nil
}

func (r *CatalogRepository) Devices(_ context.Context) ([]domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Device(nil), r.data.Devices...), nil
}

func (r *CatalogRepository) WorkOrders(_ context.Context) ([]domain.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.WorkOrder(nil), r.data.WorkOrders...), nil
}

func (r *CatalogRepository) Activities(_ context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Activity(nil), r.data.Activities...), nil
}

func (r *CatalogRepository) Notifications(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for _, n := range r.data.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *CatalogRepository) FindDevice(_ context.Context, id string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.data.Devices {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrDeviceNotFound
}

func (r *CatalogRepository) UpdateDeviceValue(_ context.Context, id string, value any, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.data.Devices {
		if r.data.Devices[i].ID == id {
			r.data.Devices[i].CurrentValue = value
			r.data.Devices[i].LastActive = at
			return nil
		}
	}
	return domain.ErrDeviceNotFound
}

func (r *CatalogRepository) FindWorkOrder(_ context.Context, id string) (*domain.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.data.WorkOrders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrWorkOrderNotFound
}

func (r *CatalogRepository) UpdateWorkOrderStatus(_ context.Context, id string, status domain.WorkOrderStatus, completedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.data.WorkOrders {
		if r.data.WorkOrders[i].ID == id {
			r.data.WorkOrders[i].Status = status
			r.data.WorkOrders[i].CompletedAt = completedAt
			return nil
		}
	}
	return domain.ErrWorkOrderNotFound
}

// AppendActivity puts activity at the head of the feed.
func (r *CatalogRepository) AppendActivity(_ context.Context, activity domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.Activities = append([]domain.Activity{activity}, r.data.Activities...)
	return nil
}
