package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// AcceptAll is the demo verifier: every credential is accepted.
type AcceptAll struct{}

func (AcceptAll) Verify(context.Context, string, string, domain.Role) error {
	return nil
}

// BcryptVerifier checks passwords against per-role bcrypt hashes. Roles
// without a configured hash keep the demo behaviour and accept anything.
type BcryptVerifier struct {
	hashes map[domain.Role][]byte
}

// NewBcryptVerifier builds a verifier from role -> bcrypt hash. Empty hashes
// are ignored.
func NewBcryptVerifier(hashes map[domain.Role]string) *BcryptVerifier {
	v := &BcryptVerifier{hashes: make(map[domain.Role][]byte, len(hashes))}
	for role, h := range hashes {
		if h != "" {
			v.hashes[role] = []byte(h)
		}
	}
	return v
}

// Strict reports whether at least one role requires a password.
func (v *BcryptVerifier) Strict() bool {
	return len(v.hashes) > 0
}

// Requires reports whether role has a configured password.
func (v *BcryptVerifier) Requires(role domain.Role) bool {
	_, ok := v.hashes[role]
	return ok
}

func (v *BcryptVerifier) Verify(_ context.Context, _, password string, role domain.Role) error {
	hash, ok := v.hashes[role]
	if !ok {
		return nil
	}
	if password == "" || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
