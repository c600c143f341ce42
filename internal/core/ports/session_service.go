package ports

import (
	"context"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// CredentialVerifier decides whether a login attempt for role may proceed.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string, role domain.Role) error
}

// TokenIssuer binds a session id to a signed token carried by the client.
type TokenIssuer interface {
	Issue(sessionID string) (string, error)
	Parse(token string) (sessionID string, err error)
}

// SessionResult is returned by the operations that replace a session's identity.
type SessionResult struct {
	Session *domain.Session
	Token   string
}

// SessionService owns the identity of every client session.
type SessionService interface {
	Login(ctx context.Context, sessionID, email, password string, role domain.Role) (*SessionResult, error)
	Logout(ctx context.Context, sessionID string) error
	SwitchRole(ctx context.Context, sessionID string, role domain.Role) (*SessionResult, error)
	Current(ctx context.Context, sessionID string) (*domain.Session, error)
}
