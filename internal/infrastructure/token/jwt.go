package token

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// JWTConfig holds JWT generation configuration.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Clock  clock.Clock
}

// sessionClaims carries the session id; the identity itself stays server side.
type sessionClaims struct {
	Sid string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 session tokens.
// Implements ports.TokenIssuer.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a new JWT issuer.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return &JWTIssuer{cfg: cfg}
}

// Issue returns a signed token bound to sessionID. A zero TTL omits the
// expiry claim.
func (j *JWTIssuer) Issue(sessionID string) (string, error) {
	now := j.cfg.Clock.Now()
	claims := sessionClaims{
		Sid: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   j.cfg.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.cfg.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.cfg.TTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its session id. Any failure is reported
// as domain.ErrInvalidToken.
func (j *JWTIssuer) Parse(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.cfg.Clock.Now),
	}
	if j.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.cfg.Issuer))
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(j.cfg.Secret), nil
	}, opts...)
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Sid == "" {
		return "", fmt.Errorf("%w: missing sid", domain.ErrInvalidToken)
	}
	return claims.Sid, nil
}
