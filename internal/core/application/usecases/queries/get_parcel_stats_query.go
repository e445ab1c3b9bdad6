package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetParcelStatsQueryIsNotConstructed = errors.New(
		"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
	)
)

// GetParcelStatsQuery retrieves the headline parcel counters.
// The counters are recomputed from the parcel table on every call
// rather than maintained incrementally, so they never drift.
type GetParcelStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelStatsQuery creates a parameterless stats query.
func NewGetParcelStatsQuery() GetParcelStatsQuery {
	return GetParcelStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

// GetParcelStatsQueryResponse carries the headline counters shown on
// dashboards and pushed to agents over the realtime channel.
type GetParcelStatsQueryResponse struct {
	Total     int64 `json:"total"`
	InTransit int64 `json:"inTransit"`
	Delivered int64 `json:"delivered"`
}
