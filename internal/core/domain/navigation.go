package domain

import "fmt"

// NavItem is a single linkable entry of a role's side menu.
type NavItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
	Badge int    `json:"badge,omitempty"`
}

// NavGroup is a titled section of the side menu.
type NavGroup struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

var navigationByRole = map[Role][]NavGroup{
	RoleAdmin: {
		{Title: "Overview", Items: []NavItem{
			{Title: "Dashboard", Path: "/admin", Icon: "bar-chart-3"},
		}},
		{Title: "Building Management", Items: []NavItem{
			{Title: "Apartments", Path: "/admin/apartments", Icon: "building-2"},
			{Title: "Floor Plans", Path: "/admin/floors", Icon: "map-pin"},
		}},
		{Title: "Residents", Items: []NavItem{
			{Title: "Homeowners", Path: "/admin/homeowners", Icon: "users"},
			{Title: "Assignments", Path: "/admin/assignments", Icon: "clipboard"},
		}},
		{Title: "System", Items: []NavItem{
			{Title: "Device Types", Path: "/admin/devices", Icon: "thermometer"},
			{Title: "Configuration", Path: "/admin/config", Icon: "settings"},
			{Title: "Reports", Path: "/admin/reports", Icon: "bar-chart-3"},
		}},
	},
	RoleHomeowner: {
		{Title: "Overview", Items: []NavItem{
			{Title: "Dashboard", Path: "/homeowner", Icon: "home"},
		}},
		{Title: "My Apartment", Items: []NavItem{
			{Title: "Devices", Path: "/homeowner/devices", Icon: "zap"},
			{Title: "Energy", Path: "/homeowner/energy", Icon: "activity"},
			{Title: "Security", Path: "/homeowner/security", Icon: "shield"},
		}},
		{Title: "Account", Items: []NavItem{
			{Title: "Notifications", Path: "/homeowner/notifications", Icon: "bell", Badge: 3},
			{Title: "Profile", Path: "/homeowner/profile", Icon: "user"},
			{Title: "Support", Path: "/homeowner/support", Icon: "phone"},
		}},
	},
	RoleMaintenance: {
		{Title: "Overview", Items: []NavItem{
			{Title: "Dashboard", Path: "/maintenance", Icon: "activity"},
		}},
		{Title: "Building", Items: []NavItem{
			{Title: "Floor Map", Path: "/maintenance/floors", Icon: "map-pin"},
			{Title: "Device Locations", Path: "/maintenance/locations", Icon: "building-2"},
		}},
		{Title: "Operations", Items: []NavItem{
			{Title: "Device Inventory", Path: "/maintenance/inventory", Icon: "wrench"},
			{Title: "Work Orders", Path: "/maintenance/orders", Icon: "clipboard", Badge: 5},
			{Title: "Device History", Path: "/maintenance/history", Icon: "bar-chart-3"},
		}},
	},
}

func init() {
	for _, r := range AllRoles {
		if len(navigationByRole[r]) == 0 {
			panic(fmt.Sprintf("domain: no navigation declared for role %q", r))
		}
	}
	if len(navigationByRole) != len(AllRoles) {
		panic("domain: navigation declared for a role outside AllRoles")
	}
}

// NavigationFor returns the side menu of role. The result is a deep copy and
// may be modified by the caller. It panics on a role outside the enumeration.
func NavigationFor(role Role) []NavGroup {
	groups, ok := navigationByRole[role]
	if !ok {
		panic(fmt.Sprintf("domain: unrecognized role %q", string(role)))
	}
	out := make([]NavGroup, len(groups))
	for i, g := range groups {
		out[i] = NavGroup{Title: g.Title, Items: append([]NavItem(nil), g.Items...)}
	}
	return out
}

// FindNavItem looks up the destination at path in role's menu.
func FindNavItem(role Role, path string) (NavItem, bool) {
	for _, g := range navigationByRole[role] {
		for _, item := range g.Items {
			if item.Path == path {
				return item, true
			}
		}
	}
	return NavItem{}, false
}
