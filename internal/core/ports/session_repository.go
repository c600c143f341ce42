package ports

import (
	"context"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// SessionRepository stores the current identity of each session.
type SessionRepository interface {
	// Get returns the identity bound to sessionID, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*domain.Identity, error)
	// Save replaces the identity bound to sessionID.
	Save(ctx context.Context, sessionID string, identity *domain.Identity) error
	// Delete removes sessionID. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
