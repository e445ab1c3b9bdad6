package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetAdminOverviewQueryIsNotConstructed = errors.New(
		"GetAdminOverviewQuery must be created via NewGetAdminOverviewQuery constructor",
	)
)

// GetAdminOverviewQuery retrieves the top-level counters shown on the
// admin dashboard: registered users, delivery agents and total parcels.
type GetAdminOverviewQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminOverviewQuery creates a parameterless overview query.
func NewGetAdminOverviewQuery() GetAdminOverviewQuery {
	return GetAdminOverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAdminOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminOverviewQueryIsNotConstructed)
}

// GetAdminOverviewQueryResponse carries the admin dashboard counters.
// Users counts all accounts regardless of role.
type GetAdminOverviewQueryResponse struct {
	Users   int64 `json:"users"`
	Agents  int64 `json:"agents"`
	Parcels int64 `json:"parcels"`
}
