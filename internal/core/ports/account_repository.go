package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. The email must be unused.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Delete removes an account. Returns a not-found error if the account
	// does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by email, used for login.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
