package domain

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// RouteRequirement is the access policy attached to a path pattern.
// An empty PermittedRoles places no role restriction on authenticated callers.
type RouteRequirement struct {
	Pattern        string
	PermittedRoles []Role
}

// Permits reports whether role satisfies the requirement's role set.
func (r RouteRequirement) Permits(role Role) bool {
	if len(r.PermittedRoles) == 0 {
		return true
	}
	for _, p := range r.PermittedRoles {
		if p == role {
			return true
		}
	}
	return false
}

// DecisionKind enumerates the guard outcomes.
type DecisionKind int

const (
	Allow DecisionKind = iota
	RedirectToLogin
	RedirectToOwnRoot
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToOwnRoot:
		return "redirect_to_own_root"
	}
	return "unknown"
}

// Decision is the guard's verdict. Target is set for the redirect kinds.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// CanAccess decides whether identity may view a destination guarded by req.
// It performs no navigation itself.
func CanAccess(identity *Identity, req RouteRequirement) Decision {
	if identity == nil {
		return Decision{Kind: RedirectToLogin, Target: LoginPath}
	}
	if !req.Permits(identity.Role) {
		return Decision{Kind: RedirectToOwnRoot, Target: identity.Role.RootPath()}
	}
	return Decision{Kind: Allow}
}

// RoleTreeRequirement is the requirement guarding role's view tree: its root
// and every path nested below it.
func RoleTreeRequirement(role Role) RouteRequirement {
	return RouteRequirement{Pattern: role.RootPath() + "/*", PermittedRoles: []Role{role}}
}
