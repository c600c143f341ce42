package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
	"github.com/smarthome/building-dashboard/internal/infrastructure/db/memory"
	"github.com/smarthome/building-dashboard/internal/infrastructure/fixtures"
)

var fixtureNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestCatalog() *memory.CatalogRepository {
	return memory.NewCatalogRepository(fixtures.Seed(fixtureNow))
}

func newDashboard() *DashboardService {
	return NewDashboardService(newTestCatalog(), SystemInfo{Environment: "test", SessionBackend: "memory"}, zerolog.Nop())
}

func identityOf(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()
	identity, err := domain.IdentityFor(role, fixtureNow)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	return identity
}

func contentOf(t *testing.T, v *ports.View) map[string]any {
	t.Helper()
	content, ok := v.Content.(map[string]any)
	if !ok {
		t.Fatalf("unexpected content type %T", v.Content)
	}
	return content
}

func TestDashboardService_RendersEveryNavigationDestination(t *testing.T) {
	svc := newDashboard()
	ctx := context.Background()

	for _, role := range domain.AllRoles {
		identity := identityOf(t, role)
		for _, group := range domain.NavigationFor(role) {
			for _, item := range group.Items {
				v, err := svc.Render(ctx, identity, item.Path, ports.ViewFilter{})
				if err != nil {
					t.Fatalf("%s: render: %v", item.Path, err)
				}
				if v.ActivePath != item.Path {
					t.Fatalf("%s: active path %q", item.Path, v.ActivePath)
				}
				if v.Content == nil {
					t.Fatalf("%s: empty content", item.Path)
				}
				if v.Identity != identity {
					t.Fatalf("%s: view must carry the viewer identity", item.Path)
				}
				if len(v.Navigation) != len(domain.NavigationFor(role)) {
					t.Fatalf("%s: navigation of another role", item.Path)
				}
			}
		}
	}
}

func TestDashboardService_UnknownNestedPathRendersDashboard(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleAdmin), "/admin/does/not/exist", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.ActivePath != "/admin" || v.Name != "admin.dashboard" {
		t.Fatalf("expected admin dashboard, got %s (%s)", v.Name, v.ActivePath)
	}
}

func TestDashboardService_PathOfAnotherRoleRendersOwnDashboard(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleHomeowner), "/maintenance/orders", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.ActivePath != "/homeowner" {
		t.Fatalf("expected homeowner dashboard, got %s", v.ActivePath)
	}
}

func TestDashboardService_RequiresIdentity(t *testing.T) {
	svc := newDashboard()
	if _, err := svc.Render(context.Background(), nil, "/admin", ports.ViewFilter{}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDashboardService_AdminStats(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleAdmin), "/admin", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := map[string]string{
		"Total Apartments": "120",
		"Occupancy Rate":   "84%",
	}
	for _, s := range v.Stats {
		if w, ok := want[s.Title]; ok && s.Value != w {
			t.Fatalf("%s: expected %s, got %s", s.Title, w, s.Value)
		}
	}
	content := contentOf(t, v)
	if got := len(content["recent_apartments"].([]domain.Apartment)); got != 4 {
		t.Fatalf("expected 4 recent apartments, got %d", got)
	}
	if got := len(content["activities"].([]domain.Activity)); got != 5 {
		t.Fatalf("expected 5 activities, got %d", got)
	}
}

func TestDashboardService_HomeownerDashboard(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleHomeowner), "/homeowner", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if v.Subtitle != "Apartment 101 • Tower A" {
		t.Fatalf("unexpected subtitle %q", v.Subtitle)
	}
	want := map[string]string{
		"Total Devices": "8",
		"Online":        "7",
		"Low Battery":   "2",
		"Temperature":   "22°C",
	}
	for _, s := range v.Stats {
		if s.Value != want[s.Title] {
			t.Fatalf("%s: expected %s, got %s", s.Title, want[s.Title], s.Value)
		}
	}

	content := contentOf(t, v)
	if got := len(content["quick_controls"].([]domain.Device)); got != 4 {
		t.Fatalf("expected 4 quick controls, got %d", got)
	}
	for _, a := range content["activities"].([]domain.Activity) {
		if a.ApartmentID != "apt-101" {
			t.Fatalf("activity of another apartment: %+v", a)
		}
	}
}

func TestDashboardService_HomeownerDeviceFilters(t *testing.T) {
	svc := newDashboard()
	ctx := context.Background()
	identity := identityOf(t, domain.RoleHomeowner)

	cases := []struct {
		filter ports.ViewFilter
		want   int
	}{
		{ports.ViewFilter{}, 8},
		{ports.ViewFilter{Room: AllRooms, Type: AllTypes}, 8},
		{ports.ViewFilter{Room: "Living Room"}, 3},
		{ports.ViewFilter{Type: "light"}, 2},
		{ports.ViewFilter{Room: "Living Room", Type: "light"}, 1},
		{ports.ViewFilter{Room: "Garage"}, 0},
	}
	for _, tc := range cases {
		v, err := svc.Render(ctx, identity, "/homeowner/devices", tc.filter)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if got := len(contentOf(t, v)["devices"].([]domain.Device)); got != tc.want {
			t.Fatalf("filter %+v: expected %d devices, got %d", tc.filter, tc.want, got)
		}
	}
}

func TestDashboardService_NotificationsUnread(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleHomeowner), "/homeowner/notifications", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := contentOf(t, v)["unread"]; got != 3 {
		t.Fatalf("expected 3 unread, got %v", got)
	}
}

func TestDashboardService_MaintenanceOrdersUrgentFirst(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleMaintenance), "/maintenance/orders", ports.ViewFilter{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if v.Name != "maintenance.orders" {
		t.Fatalf("unexpected view %s", v.Name)
	}

	orders := contentOf(t, v)["orders"].([]domain.WorkOrder)
	gotIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		gotIDs = append(gotIDs, o.ID)
	}
	want := []string{"wo-006", "wo-001", "wo-002", "wo-004", "wo-003", "wo-005"}
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestDashboardService_MaintenanceOrdersStatusFilter(t *testing.T) {
	svc := newDashboard()
	v, err := svc.Render(context.Background(), identityOf(t, domain.RoleMaintenance), "/maintenance/orders",
		ports.ViewFilter{Status: string(domain.WorkOrderCompleted)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	orders := contentOf(t, v)["orders"].([]domain.WorkOrder)
	if len(orders) != 1 || orders[0].ID != "wo-007" {
		t.Fatalf("expected only wo-007, got %+v", orders)
	}
}

func TestDashboardService_SharedFloorPlans(t *testing.T) {
	svc := newDashboard()
	ctx := context.Background()

	admin, err := svc.Render(ctx, identityOf(t, domain.RoleAdmin), "/admin/floors", ports.ViewFilter{Building: "bld-a"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	maint, err := svc.Render(ctx, identityOf(t, domain.RoleMaintenance), "/maintenance/floors", ports.ViewFilter{Building: "bld-a"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if admin.Name != "admin.floors" || maint.Name != "maintenance.floors" {
		t.Fatalf("unexpected view names %s, %s", admin.Name, maint.Name)
	}

	buildings := contentOf(t, admin)["buildings"].([]buildingFloors)
	if len(buildings) != 1 || buildings[0].Building.ID != "bld-a" {
		t.Fatalf("expected only Tower A, got %+v", buildings)
	}
	if floors := buildings[0].Floors; len(floors) != 2 || floors[0].Floor != 1 {
		t.Fatalf("expected floors 1 and 2, got %+v", floors)
	}
}

func TestViewName(t *testing.T) {
	cases := map[string]string{
		"/admin":              "admin.dashboard",
		"/admin/floors":       "admin.floors",
		"/maintenance/orders": "maintenance.orders",
	}
	for in, want := range cases {
		if got := viewName(in); got != want {
			t.Fatalf("viewName(%q) = %q, want %q", in, got, want)
		}
	}
}
