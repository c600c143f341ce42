package domain

import "fmt"

// Role is the closed set of actor categories that control navigation and
// route access.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHomeowner   Role = "homeowner"
	RoleMaintenance Role = "maintenance"
)

// AllRoles lists every role in display order. Maps keyed by Role must cover
// exactly these values.
var AllRoles = []Role{RoleAdmin, RoleHomeowner, RoleMaintenance}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedRole, s)
	}
	return r, nil
}

// Valid reports whether r belongs to the enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHomeowner, RoleMaintenance:
		return true
	}
	return false
}

// RootPath is the landing path of the role's view tree.
func (r Role) RootPath() string {
	return "/" + string(r)
}

// Label is the human-readable role name shown on the login view.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleHomeowner:
		return "Homeowner"
	case RoleMaintenance:
		return "Maintenance"
	}
	panic(fmt.Sprintf("domain: unrecognized role %q", string(r)))
}

// Description is the one-line summary shown next to the role label.
func (r Role) Description() string {
	switch r {
	case RoleAdmin:
		return "Full system access and configuration"
	case RoleHomeowner:
		return "Control your smart home devices"
	case RoleMaintenance:
		return "Building operations and device management"
	}
	panic(fmt.Sprintf("domain: unrecognized role %q", string(r)))
}
