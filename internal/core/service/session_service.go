package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

// SessionOptions tunes the session service.
type SessionOptions struct {
	// LoginDelay simulates the latency of a remote identity provider.
	LoginDelay time.Duration
	// AllowRoleSwitch enables the demo role switcher.
	AllowRoleSwitch bool
	// Clock drives the login delay and identity timestamps. Defaults to the
	// wall clock.
	Clock clock.Clock
}

// SessionService implements login, logout and role switching over a
// SessionRepository.
type SessionService struct {
	repo     ports.SessionRepository
	verifier ports.CredentialVerifier
	tokens   ports.TokenIssuer
	opts     SessionOptions
	log      zerolog.Logger
}

func NewSessionService(
	repo ports.SessionRepository,
	verifier ports.CredentialVerifier,
	tokens ports.TokenIssuer,
	opts SessionOptions,
	log zerolog.Logger,
) *SessionService {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if verifier == nil {
		verifier = AcceptAll{}
	}
	return &SessionService{repo: repo, verifier: verifier, tokens: tokens, opts: opts, log: log}
}

// Login waits the simulated delay, verifies the credentials and binds the
// fixed identity of role to a fresh session id. The caller's previous
// session, if any, is dropped.
func (s *SessionService) Login(ctx context.Context, sessionID, email, password string, role domain.Role) (*ports.SessionResult, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("login: %w", domain.ErrUnrecognizedRole)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if err := s.verifier.Verify(ctx, email, password, role); err != nil {
		s.log.Info().Str("email", email).Str("role", string(role)).Msg("login rejected")
		return nil, err
	}

	res, err := s.replace(ctx, uuid.NewString(), role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if sessionID != "" && sessionID != res.Session.ID {
		if err := s.repo.Delete(ctx, sessionID); err != nil {
			s.log.Warn().Err(err).Str("session", sessionID).Msg("drop previous session")
		}
	}

	s.log.Info().
		Str("session", res.Session.ID).
		Str("role", string(role)).
		Msg("login succeeded")
	return res, nil
}

// Logout clears sessionID. It is idempotent.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session", sessionID).Msg("logout")
	return nil
}

// passwordRequirer is implemented by verifiers that hold a password for some
// roles. Those roles are only reachable through Login.
type passwordRequirer interface {
	Requires(role domain.Role) bool
}

// SwitchRole replaces the identity of sessionID without credential checks.
// Roles guarded by a password cannot be switched into.
func (s *SessionService) SwitchRole(ctx context.Context, sessionID string, role domain.Role) (*ports.SessionResult, error) {
	if !s.opts.AllowRoleSwitch {
		return nil, domain.ErrRoleSwitchDisabled
	}
	if !role.Valid() {
		return nil, fmt.Errorf("switch role: %w", domain.ErrUnrecognizedRole)
	}
	if pr, ok := s.verifier.(passwordRequirer); ok && pr.Requires(role) {
		return nil, fmt.Errorf("switch role to %s: %w", role, domain.ErrRoleSwitchDisabled)
	}

	res, err := s.replace(ctx, sessionID, role)
	if err != nil {
		return nil, fmt.Errorf("switch role: %w", err)
	}

	s.log.Info().Str("session", res.Session.ID).Str("role", string(role)).Msg("role switched")
	return res, nil
}

// Current returns the session bound to sessionID. Unknown or empty ids yield
// an anonymous session.
func (s *SessionService) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return &domain.Session{}, nil
	}

	identity, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return &domain.Session{}, nil
		}
		return nil, fmt.Errorf("current session: %w", err)
	}
	return &domain.Session{ID: sessionID, Identity: identity}, nil
}

func (s *SessionService) replace(ctx context.Context, sessionID string, role domain.Role) (*ports.SessionResult, error) {
	identity, err := domain.IdentityFor(role, s.opts.Clock.Now().UTC())
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := s.repo.Save(ctx, sessionID, identity); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(sessionID)
	if err != nil {
		return nil, err
	}

	return &ports.SessionResult{
		Session: &domain.Session{ID: sessionID, Identity: identity},
		Token:   token,
	}, nil
}

func (s *SessionService) wait(ctx context.Context) error {
	if s.opts.LoginDelay <= 0 {
		return nil
	}

	t := s.opts.Clock.Timer(s.opts.LoginDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
