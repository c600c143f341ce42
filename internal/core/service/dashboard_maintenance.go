package service

import (
	"context"
	"sort"
	"time"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

func activeOrders(orders []domain.WorkOrder) []domain.WorkOrder {
	out := make([]domain.WorkOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status.Active() {
			out = append(out, o)
		}
	}
	return out
}

// sortByUrgency orders work orders urgent first, then oldest first.
func sortByUrgency(orders []domain.WorkOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		ri, rj := orders[i].Priority.Rank(), orders[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}

func (s *DashboardService) maintenanceDashboard(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}
	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return err
	}
	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		return err
	}

	attention := make([]domain.Device, 0)
	for _, d := range devices {
		if d.NeedsAttention() {
			attention = append(attention, d)
		}
	}
	active := activeOrders(orders)

	v.Title = "Maintenance Dashboard"
	v.Subtitle = "Building operations overview"
	v.Stats = []ports.Stat{
		stat("Pending Orders", countOrders(orders, domain.WorkOrderPending), "clock"),
		stat("In Progress", countOrders(orders, domain.WorkOrderInProgress), "wrench"),
		stat("Completed", countOrders(orders, domain.WorkOrderCompleted), "check-circle"),
		stat("Offline Devices", countDevices(devices, func(d domain.Device) bool { return d.Status == domain.DeviceOffline }), "alert-triangle"),
	}
	v.Content = map[string]any{
		"active_orders":   limit(active, 4),
		"active_count":    len(active),
		"needs_attention": attention,
		"device_types":    deviceTypeDistribution(devices),
		"activities":      limit(activities, 5),
	}
	return nil
}

type deviceLocation struct {
	ApartmentID  string          `json:"apartment_id"`
	Unit         string          `json:"unit"`
	Floor        int             `json:"floor"`
	BuildingName string          `json:"building_name"`
	Room         string          `json:"room"`
	Devices      []domain.Device `json:"devices"`
}

func (s *DashboardService) maintenanceLocations(ctx context.Context, _ *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return err
	}
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return err
	}
	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return err
	}

	names := buildingNames(buildings)
	aptByID := make(map[string]domain.Apartment, len(apartments))
	for _, a := range apartments {
		aptByID[a.ID] = a
	}

	index := make(map[[2]string]int)
	out := make([]deviceLocation, 0)
	for _, d := range devices {
		apt := aptByID[d.ApartmentID]
		if filter.Building != "" && apt.BuildingID != filter.Building {
			continue
		}
		key := [2]string{d.ApartmentID, d.Room}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, deviceLocation{
				ApartmentID:  d.ApartmentID,
				Unit:         apt.Unit,
				Floor:        apt.Floor,
				BuildingName: names[apt.BuildingID],
				Room:         d.Room,
			})
		}
		out[i].Devices = append(out[i].Devices, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ApartmentID != out[j].ApartmentID {
			return out[i].ApartmentID < out[j].ApartmentID
		}
		return out[i].Room < out[j].Room
	})

	v.Subtitle = "Devices by apartment and room"
	v.Content = map[string]any{"locations": out}
	return nil
}

func (s *DashboardService) maintenanceInventory(ctx context.Context, _ *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return err
	}
	out := filterDevices(devices, ports.ViewFilter{Type: filter.Type, Status: filter.Status})

	v.Subtitle = "All installed devices"
	v.Content = map[string]any{"devices": out, "total": len(out)}
	return nil
}

func (s *DashboardService) maintenanceOrders(ctx context.Context, _ *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}

	var out []domain.WorkOrder
	if filter.Status == "" {
		out = activeOrders(orders)
	} else {
		out = make([]domain.WorkOrder, 0)
		for _, o := range orders {
			if string(o.Status) == filter.Status {
				out = append(out, o)
			}
		}
	}
	sortByUrgency(out)

	v.Subtitle = "Work orders by urgency"
	v.Content = map[string]any{"orders": out, "total": len(out)}
	return nil
}

func (s *DashboardService) maintenanceHistory(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}
	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		return err
	}

	closed := make([]domain.WorkOrder, 0)
	for _, o := range orders {
		if !o.Status.Active() {
			closed = append(closed, o)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closedAt(closed[i]).After(closedAt(closed[j]))
	})

	v.Subtitle = "Closed work orders and device events"
	v.Content = map[string]any{
		"closed_orders": closed,
		"activities":    limit(activities, 10),
	}
	return nil
}

func closedAt(o domain.WorkOrder) time.Time {
	if o.CompletedAt != nil {
		return *o.CompletedAt
	}
	return o.CreatedAt
}
