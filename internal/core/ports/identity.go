package ports

import (
	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
)

// Identity is the verified caller of a request: who they are and the single
// role that scopes what they may do.
type Identity struct {
	ID   kernel.UUID
	Role account.Role
}

// TokenVerifier resolves a presented credential into an Identity.
// Implementations return an unauthenticated error for missing, malformed,
// or expired credentials; they never return a partial identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// TokenIssuer produces a credential for an identity after successful login
// or registration.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
}
