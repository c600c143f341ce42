package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

func newTestRepository(t *testing.T, ttl time.Duration) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client, ttl), mr
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, time.Hour)

	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	identity, _ := domain.IdentityFor(domain.RoleHomeowner, created)
	if err := repo.Save(ctx, "abc", identity); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !mr.Exists("session:abc") {
		t.Fatalf("expected key session:abc")
	}
	if ttl := mr.TTL("session:abc"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", ttl)
	}

	got, err := repo.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "owner-001" || got.Role != domain.RoleHomeowner || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestSessionRepository_MissingAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t, time.Hour)

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	identity, _ := domain.IdentityFor(domain.RoleAdmin, time.Time{})
	_ = repo.Save(ctx, "abc", identity)
	if err := repo.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete of missing session: %v", err)
	}
	if _, err := repo.Get(ctx, "abc"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_Expires(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, time.Minute)

	identity, _ := domain.IdentityFor(domain.RoleMaintenance, time.Time{})
	_ = repo.Save(ctx, "abc", identity)

	mr.FastForward(2 * time.Minute)
	if _, err := repo.Get(ctx, "abc"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestSessionRepository_Unreachable(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t, time.Minute)
	mr.Close()

	if _, err := repo.Get(ctx, "abc"); err == nil || errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected a transport error, got %v", err)
	}
}
