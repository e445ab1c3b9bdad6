// Package token implements credential issuing and verification with signed
// JWTs. Tokens carry the account identifier as the subject and the role as a
// private claim, so authorization never needs a database round trip.
package token

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// claims is the JWT payload. Role is a private claim next to the
// registered set.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HMAC-signed tokens. Implements both
// ports.TokenIssuer and ports.TokenVerifier.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

var _ ports.TokenIssuer = (*JWTService)(nil)
var _ ports.TokenVerifier = (*JWTService)(nil)

// NewJWTService creates a token service signing with the given secret.
// Tokens expire after ttl.
func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue produces a signed token for the identity.
func (s *JWTService) Issue(identity ports.Identity) (string, error) {
	if err := identity.ID.Validate(); err != nil {
		return "", err
	}
	if err := identity.Role.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a presented token. All failure modes map to
// an unauthenticated error so the transport layer can answer 401 uniformly.
func (s *JWTService) Verify(tokenString string) (ports.Identity, error) {
	if tokenString == "" {
		return ports.Identity{}, errs.NewUnauthenticatedError("missing token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Identity{}, errs.NewUnauthenticatedErrorWithCause("token expired", err)
		}
		return ports.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	payload, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return ports.Identity{}, errs.NewUnauthenticatedError("invalid token")
	}

	id, err := kernel.UUIDFromString(payload.Subject)
	if err != nil {
		return ports.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid subject", err)
	}

	role, err := account.RoleFromString(payload.Role)
	if err != nil {
		return ports.Identity{}, errs.NewUnauthenticatedErrorWithCause("invalid role", err)
	}

	return ports.Identity{ID: id, Role: role}, nil
}
