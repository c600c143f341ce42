package domain

import "time"

// Identity models the authenticated actor of a session.
type Identity struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// directory holds the single fixed identity associated with each role.
var directory = map[Role]Identity{
	RoleAdmin: {
		ID:    "admin-001",
		Email: "admin@smarthome.com",
		Name:  "System Administrator",
		Role:  RoleAdmin,
	},
	RoleHomeowner: {
		ID:    "owner-001",
		Email: "john.doe@email.com",
		Name:  "John Doe",
		Role:  RoleHomeowner,
	},
	RoleMaintenance: {
		ID:    "maint-001",
		Email: "tech@smarthome.com",
		Name:  "Mike Thompson",
		Role:  RoleMaintenance,
	},
}

// IdentityFor returns a copy of the fixed identity for role, stamped with
// createdAt.
func IdentityFor(role Role, createdAt time.Time) (*Identity, error) {
	id, ok := directory[role]
	if !ok {
		return nil, ErrUnrecognizedRole
	}
	id.CreatedAt = createdAt
	return &id, nil
}

// Session is the per-client session context threaded through the guard and
// the views. A nil Identity means nobody is logged in.
type Session struct {
	ID       string    `json:"id"`
	Identity *Identity `json:"identity,omitempty"`
}

// IsAuthenticated reports whether the session carries an identity.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Identity != nil
}

// Role returns the identity's role, or "" for an anonymous session.
func (s *Session) Role() Role {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.Identity.Role
}
