package queries

import (
	"errors"
	"time"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetStaleParcelsQueryIsNotConstructed = errors.New(
		"GetStaleParcelsQuery must be created via NewGetStaleParcelsQuery constructor",
	)
)

// GetStaleParcelsQuery finds parcels sitting in a non-terminal status
// longer than the threshold. Backs the sweep job that flags stuck
// deliveries for operators.
type GetStaleParcelsQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleParcelsQuery creates a staleness query with the given threshold.
func NewGetStaleParcelsQuery(threshold time.Duration) (GetStaleParcelsQuery, error) {
	if threshold <= 0 {
		return GetStaleParcelsQuery{}, errs.NewValueIsInvalidError("threshold")
	}
	return GetStaleParcelsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Threshold returns how long a parcel may sit untouched before it counts
// as stale.
func (q GetStaleParcelsQuery) Threshold() time.Duration {
	return q.threshold
}

// Validate ensures the query was created through the constructor.
func (q GetStaleParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleParcelsQueryIsNotConstructed)
}
