package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// SystemInfo is the runtime configuration shown on the admin configuration view.
type SystemInfo struct {
	Environment    string        `json:"environment"`
	SessionBackend string        `json:"session_backend"`
	SessionTTL     time.Duration `json:"session_ttl_ns"`
	CatalogBackend string        `json:"catalog_backend"`
	LoginDelay     time.Duration `json:"login_delay_ns"`
	StrictLogin    bool          `json:"strict_login"`
	RoleSwitch     bool          `json:"role_switch"`
	DeviceWorkers  int           `json:"device_workers"`
}

type viewBuilder func(ctx context.Context, identity *domain.Identity, filter ports.ViewFilter, v *ports.View) error

// DashboardService renders the role-scoped views from a CatalogRepository.
type DashboardService struct {
	catalog  ports.CatalogRepository
	system   SystemInfo
	log      zerolog.Logger
	builders map[string]viewBuilder
}

func NewDashboardService(catalog ports.CatalogRepository, system SystemInfo, log zerolog.Logger) *DashboardService {
	s := &DashboardService{catalog: catalog, system: system, log: log}
	s.builders = map[string]viewBuilder{
		"/admin":             s.adminDashboard,
		"/admin/apartments":  s.adminApartments,
		"/admin/floors":      s.floorPlans,
		"/admin/homeowners":  s.adminHomeowners,
		"/admin/assignments": s.adminAssignments,
		"/admin/devices":     s.deviceTypes,
		"/admin/config":      s.adminConfig,
		"/admin/reports":     s.adminReports,

		"/homeowner":               s.homeownerDashboard,
		"/homeowner/devices":       s.homeownerDevices,
		"/homeowner/energy":        s.homeownerEnergy,
		"/homeowner/security":      s.homeownerSecurity,
		"/homeowner/notifications": s.homeownerNotifications,
		"/homeowner/profile":       s.homeownerProfile,
		"/homeowner/support":       s.homeownerSupport,

		"/maintenance":           s.maintenanceDashboard,
		"/maintenance/floors":    s.floorPlans,
		"/maintenance/locations": s.maintenanceLocations,
		"/maintenance/inventory": s.maintenanceInventory,
		"/maintenance/orders":    s.maintenanceOrders,
		"/maintenance/history":   s.maintenanceHistory,
	}
	return s
}

// Render builds the view at path for identity. A path that is not one of the
// role's navigation destinations falls back to the role dashboard.
func (s *DashboardService) Render(ctx context.Context, identity *domain.Identity, path string, filter ports.ViewFilter) (*ports.View, error) {
	if identity == nil {
		return nil, domain.ErrSessionNotFound
	}

	role := identity.Role
	item, ok := domain.FindNavItem(role, path)
	if !ok {
		path = role.RootPath()
		item, _ = domain.FindNavItem(role, path)
	}

	build, ok := s.builders[path]
	if !ok {
		return nil, fmt.Errorf("render %s: no view registered", path)
	}

	v := &ports.View{
		Name:       viewName(path),
		Title:      item.Title,
		ActivePath: path,
		Identity:   identity,
		Navigation: domain.NavigationFor(role),
	}
	if err := build(ctx, identity, filter, v); err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	return v, nil
}

// viewName turns "/admin/floors" into "admin.floors" and "/admin" into
// "admin.dashboard".
func viewName(path string) string {
	name := []byte(path[1:])
	nested := false
	for i, b := range name {
		if b == '/' {
			name[i] = '.'
			nested = true
		}
	}
	if !nested {
		return string(name) + ".dashboard"
	}
	return string(name)
}

// --- shared builders ---

type floorPlan struct {
	Floor      int                `json:"floor"`
	Apartments []domain.Apartment `json:"apartments"`
}

type buildingFloors struct {
	Building domain.Building `json:"building"`
	Floors   []floorPlan     `json:"floors"`
}

func (s *DashboardService) floorPlans(ctx context.Context, _ *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return err
	}
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return err
	}

	out := make([]buildingFloors, 0, len(buildings))
	for _, b := range buildings {
		if filter.Building != "" && b.ID != filter.Building {
			continue
		}
		byFloor := make(map[int][]domain.Apartment)
		for _, a := range apartments {
			if a.BuildingID == b.ID {
				byFloor[a.Floor] = append(byFloor[a.Floor], a)
			}
		}
		floors := make([]floorPlan, 0, len(byFloor))
		for f, apts := range byFloor {
			floors = append(floors, floorPlan{Floor: f, Apartments: apts})
		}
		sort.Slice(floors, func(i, j int) bool { return floors[i].Floor < floors[j].Floor })
		out = append(out, buildingFloors{Building: b, Floors: floors})
	}

	v.Subtitle = "Floors and units by building"
	v.Content = map[string]any{"buildings": out}
	return nil
}

type typeCount struct {
	Type  domain.DeviceType `json:"type"`
	Count int               `json:"count"`
}

var deviceTypeOrder = []domain.DeviceType{
	domain.DeviceThermostat,
	domain.DeviceLight,
	domain.DeviceLock,
	domain.DeviceBlinds,
	domain.DeviceCamera,
	domain.DeviceSensor,
	domain.DeviceDoorbell,
}

func deviceTypeDistribution(devices []domain.Device) []typeCount {
	counts := make(map[domain.DeviceType]int)
	for _, d := range devices {
		counts[d.Type]++
	}
	out := make([]typeCount, 0, len(deviceTypeOrder))
	for _, t := range deviceTypeOrder {
		if counts[t] > 0 {
			out = append(out, typeCount{Type: t, Count: counts[t]})
		}
	}
	return out
}

func (s *DashboardService) deviceTypes(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return err
	}
	v.Subtitle = "Installed device types"
	v.Content = map[string]any{
		"types": deviceTypeDistribution(devices),
		"total": len(devices),
	}
	return nil
}

// --- helpers ---

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func stat(title string, value any, icon string) ports.Stat {
	return ports.Stat{Title: title, Value: fmt.Sprint(value), Icon: icon}
}

func countDevices(devices []domain.Device, pred func(domain.Device) bool) int {
	n := 0
	for _, d := range devices {
		if pred(d) {
			n++
		}
	}
	return n
}

func countOrders(orders []domain.WorkOrder, status domain.WorkOrderStatus) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

func buildingNames(buildings []domain.Building) map[string]string {
	names := make(map[string]string, len(buildings))
	for _, b := range buildings {
		names[b.ID] = b.Name
	}
	return names
}

func filterDevices(devices []domain.Device, filter ports.ViewFilter) []domain.Device {
	out := make([]domain.Device, 0, len(devices))
	for _, d := range devices {
		if filter.Room != "" && filter.Room != AllRooms && d.Room != filter.Room {
			continue
		}
		if filter.Type != "" && filter.Type != AllTypes && string(d.Type) != filter.Type {
			continue
		}
		if filter.Status != "" && string(d.Status) != filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out
}
