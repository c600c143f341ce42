// Package memory holds the in-process repositories used when no external
// store is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

type sessionEntry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// SessionRepository stores sessions in a map with a sliding TTL.
type SessionRepository struct {
	mu      sync.RWMutex
	entries map[string]sessionEntry
	ttl     time.Duration
	clock   clock.Clock
}

// NewSessionRepository creates a repository whose sessions expire ttl after
// their last write. A zero ttl keeps sessions until they are deleted.
func NewSessionRepository(ttl time.Duration, clk clock.Clock) *SessionRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &SessionRepository{
		entries: make(map[string]sessionEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (*domain.Identity, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok || r.expired(entry) {
		return nil, domain.ErrSessionNotFound
	}
	identity := entry.identity
	return &identity, nil
}

func (r *SessionRepository) Save(_ context.Context, sessionID string, identity *domain.Identity) error {
	entry := sessionEntry{identity: *identity}
	if r.ttl > 0 {
		entry.expiresAt = r.clock.Now().Add(r.ttl)
	}

	r.mu.Lock()
	r.entries[sessionID] = entry
	r.mu.Unlock()
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Cleanup drops expired sessions and returns how many were removed.
func (r *SessionRepository) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if r.expired(entry) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is cancelled.
func (r *SessionRepository) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := r.clock.Ticker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}

func (r *SessionRepository) expired(e sessionEntry) bool {
	return !e.expiresAt.IsZero() && !r.clock.Now().Before(e.expiresAt)
}
