package service

import (
	"context"
	"fmt"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// Filter values that disable the room and type filters.
const (
	AllRooms = "All Rooms"
	AllTypes = "all"
)

var deviceTypeFilters = []string{
	AllTypes,
	string(domain.DeviceThermostat),
	string(domain.DeviceLight),
	string(domain.DeviceLock),
	string(domain.DeviceBlinds),
	string(domain.DeviceCamera),
}

// home is the slice of the catalog that belongs to one homeowner.
type home struct {
	Apartment *domain.Apartment
	Building  *domain.Building
	Devices   []domain.Device
}

func (s *DashboardService) loadHome(ctx context.Context, identity *domain.Identity) (*home, error) {
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return nil, err
	}

	h := &home{}
	for i := range apartments {
		if apartments[i].HomeownerID == identity.ID {
			h.Apartment = &apartments[i]
			break
		}
	}
	if h.Apartment == nil {
		s.log.Warn().Str("homeowner", identity.ID).Msg("no apartment assigned to homeowner")
		return h, nil
	}

	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range buildings {
		if buildings[i].ID == h.Apartment.BuildingID {
			h.Building = &buildings[i]
			break
		}
	}

	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.ApartmentID == h.Apartment.ID {
			h.Devices = append(h.Devices, d)
		}
	}
	return h, nil
}

func (h *home) subtitle() string {
	if h.Apartment == nil {
		return "No apartment assigned"
	}
	if h.Building == nil {
		return "Apartment " + h.Apartment.Unit
	}
	return fmt.Sprintf("Apartment %s • %s", h.Apartment.Unit, h.Building.Name)
}

func (h *home) rooms() []string {
	rooms := []string{AllRooms}
	seen := make(map[string]bool)
	for _, d := range h.Devices {
		if !seen[d.Room] {
			seen[d.Room] = true
			rooms = append(rooms, d.Room)
		}
	}
	return rooms
}

func (h *home) ofType(types ...domain.DeviceType) []domain.Device {
	out := make([]domain.Device, 0)
	for _, d := range h.Devices {
		for _, t := range types {
			if d.Type == t {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func (h *home) temperature() string {
	for _, d := range h.ofType(domain.DeviceThermostat) {
		if n, ok := domain.AsNumber(d.CurrentValue); ok {
			return fmt.Sprintf("%g°C", n)
		}
	}
	return "-"
}

func (s *DashboardService) homeActivities(ctx context.Context, h *home, n int) ([]domain.Activity, error) {
	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0, n)
	if h.Apartment == nil {
		return out, nil
	}
	for _, a := range activities {
		if a.ApartmentID == h.Apartment.ID {
			out = append(out, a)
		}
	}
	return limit(out, n), nil
}

func (s *DashboardService) homeownerDashboard(ctx context.Context, identity *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}
	activities, err := s.homeActivities(ctx, h, 5)
	if err != nil {
		return err
	}

	v.Title = "My Home"
	v.Subtitle = h.subtitle()
	v.Stats = []ports.Stat{
		stat("Total Devices", len(h.Devices), "radio"),
		stat("Online", countDevices(h.Devices, domain.Device.IsOnline), "wifi"),
		stat("Low Battery", countDevices(h.Devices, domain.Device.LowBattery), "battery"),
		stat("Temperature", h.temperature(), "thermometer"),
	}
	v.Content = map[string]any{
		"apartment":      h.Apartment,
		"rooms":          h.rooms(),
		"types":          deviceTypeFilters,
		"devices":        filterDevices(h.Devices, ports.ViewFilter{Room: filter.Room, Type: filter.Type}),
		"quick_controls": limit(h.Devices, 4),
		"activities":     activities,
	}
	return nil
}

func (s *DashboardService) homeownerDevices(ctx context.Context, identity *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}
	devices := filterDevices(h.Devices, ports.ViewFilter{Room: filter.Room, Type: filter.Type})

	v.Subtitle = h.subtitle()
	v.Content = map[string]any{
		"rooms":   h.rooms(),
		"types":   deviceTypeFilters,
		"devices": devices,
	}
	return nil
}

func lightIsOn(d domain.Device) bool {
	switch val := d.CurrentValue.(type) {
	case bool:
		return val
	default:
		n, ok := domain.AsNumber(val)
		return ok && n > 0
	}
}

func (s *DashboardService) homeownerEnergy(ctx context.Context, identity *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}
	lights := h.ofType(domain.DeviceLight)

	v.Subtitle = h.subtitle()
	v.Content = map[string]any{
		"climate":     h.ofType(domain.DeviceThermostat),
		"lighting":    lights,
		"lights_on":   countDevices(lights, lightIsOn),
		"temperature": h.temperature(),
	}
	return nil
}

func (s *DashboardService) homeownerSecurity(ctx context.Context, identity *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}
	locks := h.ofType(domain.DeviceLock)
	locked := countDevices(locks, func(d domain.Device) bool {
		b, ok := d.CurrentValue.(bool)
		return ok && b
	})

	v.Subtitle = h.subtitle()
	v.Content = map[string]any{
		"locks":      locks,
		"all_locked": len(locks) > 0 && locked == len(locks),
		"cameras":    h.ofType(domain.DeviceCamera, domain.DeviceDoorbell),
		"sensors":    h.ofType(domain.DeviceSensor),
	}
	return nil
}

func (s *DashboardService) homeownerNotifications(ctx context.Context, identity *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	notes, err := s.catalog.Notifications(ctx, identity.ID)
	if err != nil {
		return err
	}
	unread := 0
	for _, n := range notes {
		if !n.Read {
			unread++
		}
	}

	v.Subtitle = fmt.Sprintf("%d unread", unread)
	v.Content = map[string]any{"notifications": notes, "unread": unread}
	return nil
}

func (s *DashboardService) homeownerProfile(ctx context.Context, identity *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}

	v.Subtitle = identity.Email
	v.Content = map[string]any{
		"profile":   identity,
		"apartment": h.Apartment,
		"building":  h.Building,
	}
	return nil
}

func (s *DashboardService) homeownerSupport(ctx context.Context, identity *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	h, err := s.loadHome(ctx, identity)
	if err != nil {
		return err
	}
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}

	open := make([]domain.WorkOrder, 0)
	closed := make([]domain.WorkOrder, 0)
	for _, o := range orders {
		if h.Apartment == nil || o.ApartmentID != h.Apartment.ID {
			continue
		}
		if o.Status.Active() {
			open = append(open, o)
		} else {
			closed = append(closed, o)
		}
	}

	v.Subtitle = h.subtitle()
	v.Content = map[string]any{"open": open, "closed": closed}
	return nil
}
