package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetAllAccountsQueryIsNotConstructed = errors.New(
		"GetAllAccountsQuery must be created via NewGetAllAccountsQuery constructor",
	)
)

// GetAllAccountsQuery retrieves every account for the admin user listing.
// Password hashes never leave the write side; the read model carries
// only displayable fields.
type GetAllAccountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAccountsQuery creates a parameterless account listing query.
func NewGetAllAccountsQuery() GetAllAccountsQuery {
	return GetAllAccountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAccountsQueryIsNotConstructed)
}

// AccountQueryResponse is one row of the admin user listing.
type AccountQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
