package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

type buildingSummary struct {
	domain.Building
	OccupancyRate int `json:"occupancy_rate"`
}

func summarizeBuildings(buildings []domain.Building) []buildingSummary {
	out := make([]buildingSummary, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, buildingSummary{Building: b, OccupancyRate: percent(b.OccupiedApartments, b.TotalApartments)})
	}
	return out
}

func (s *DashboardService) adminDashboard(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
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
	activities, err := s.catalog.Activities(ctx)
	if err != nil {
		return err
	}

	total, occupied := 0, 0
	for _, b := range buildings {
		total += b.TotalApartments
		occupied += b.OccupiedApartments
	}

	v.Title = "Admin Dashboard"
	v.Subtitle = "Building overview and management"
	v.Stats = []ports.Stat{
		stat("Total Apartments", total, "building-2"),
		stat("Occupancy Rate", strconv.Itoa(percent(occupied, total))+"%", "trending-up"),
		stat("Active Devices", countDevices(devices, domain.Device.IsOnline), "zap"),
		stat("Open Alerts", countDevices(devices, domain.Device.NeedsAttention), "alert-triangle"),
	}
	v.Content = map[string]any{
		"buildings":         summarizeBuildings(buildings),
		"recent_apartments": limit(apartments, 4),
		"activities":        limit(activities, 5),
	}
	return nil
}

func (s *DashboardService) adminApartments(ctx context.Context, _ *domain.Identity, filter ports.ViewFilter, v *ports.View) error {
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return err
	}

	out := make([]domain.Apartment, 0, len(apartments))
	for _, a := range apartments {
		if filter.Building != "" && a.BuildingID != filter.Building {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		out = append(out, a)
	}

	v.Subtitle = "All units across buildings"
	v.Content = map[string]any{"apartments": out, "total": len(out)}
	return nil
}

type homeownerEntry struct {
	HomeownerID  string `json:"homeowner_id"`
	Name         string `json:"name"`
	ApartmentID  string `json:"apartment_id"`
	Unit         string `json:"unit"`
	Floor        int    `json:"floor"`
	BuildingName string `json:"building_name"`
	DeviceCount  int    `json:"device_count"`
}

func (s *DashboardService) adminHomeowners(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return err
	}
	apartments, err := s.catalog.Apartments(ctx)
	if err != nil {
		return err
	}

	names := buildingNames(buildings)
	out := make([]homeownerEntry, 0)
	for _, a := range apartments {
		if a.HomeownerID == "" {
			continue
		}
		out = append(out, homeownerEntry{
			HomeownerID:  a.HomeownerID,
			Name:         a.HomeownerName,
			ApartmentID:  a.ID,
			Unit:         a.Unit,
			Floor:        a.Floor,
			BuildingName: names[a.BuildingID],
			DeviceCount:  a.DeviceCount,
		})
	}

	v.Subtitle = "Residents and their units"
	v.Content = map[string]any{"homeowners": out}
	return nil
}

type assignment struct {
	Technician string             `json:"technician"`
	Orders     []domain.WorkOrder `json:"orders"`
}

// Unassigned labels work orders without a technician.
const Unassigned = "Unassigned"

func (s *DashboardService) adminAssignments(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}

	byTech := make(map[string][]domain.WorkOrder)
	for _, o := range orders {
		if !o.Status.Active() {
			continue
		}
		tech := o.AssignedTo
		if tech == "" {
			tech = Unassigned
		}
		byTech[tech] = append(byTech[tech], o)
	}

	out := make([]assignment, 0, len(byTech))
	for tech, list := range byTech {
		out = append(out, assignment{Technician: tech, Orders: list})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Technician < out[j].Technician })

	v.Subtitle = "Open work orders by technician"
	v.Content = map[string]any{"assignments": out}
	return nil
}

func (s *DashboardService) adminConfig(_ context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	v.Subtitle = "Runtime configuration"
	v.Content = map[string]any{"system": s.system}
	return nil
}

type statusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func (s *DashboardService) adminReports(ctx context.Context, _ *domain.Identity, _ ports.ViewFilter, v *ports.View) error {
	buildings, err := s.catalog.Buildings(ctx)
	if err != nil {
		return err
	}
	devices, err := s.catalog.Devices(ctx)
	if err != nil {
		return err
	}
	orders, err := s.catalog.WorkOrders(ctx)
	if err != nil {
		return err
	}

	orderCounts := make([]statusCount, 0, 4)
	for _, st := range []domain.WorkOrderStatus{
		domain.WorkOrderPending, domain.WorkOrderInProgress, domain.WorkOrderCompleted, domain.WorkOrderCancelled,
	} {
		orderCounts = append(orderCounts, statusCount{Status: string(st), Count: countOrders(orders, st)})
	}

	deviceCounts := make([]statusCount, 0, 4)
	for _, st := range []domain.DeviceStatus{
		domain.DeviceOnline, domain.DeviceIdle, domain.DeviceOffline, domain.DeviceError,
	} {
		deviceCounts = append(deviceCounts, statusCount{
			Status: string(st),
			Count:  countDevices(devices, func(d domain.Device) bool { return d.Status == st }),
		})
	}

	v.Subtitle = "Occupancy, devices and work orders"
	v.Content = map[string]any{
		"occupancy":   summarizeBuildings(buildings),
		"devices":     deviceCounts,
		"work_orders": orderCounts,
	}
	return nil
}
