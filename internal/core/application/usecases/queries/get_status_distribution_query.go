package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetStatusDistributionQueryIsNotConstructed = errors.New(
		"GetStatusDistributionQuery must be created via NewGetStatusDistributionQuery constructor",
	)
)

// GetStatusDistributionQuery retrieves the per-status parcel histogram
// backing the admin analytics chart.
type GetStatusDistributionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusDistributionQuery creates a parameterless histogram query.
func NewGetStatusDistributionQuery() GetStatusDistributionQuery {
	return GetStatusDistributionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusDistributionQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusDistributionQueryIsNotConstructed)
}

// StatusCount is one histogram bucket. Every lifecycle status gets a
// bucket even when its count is zero.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
