package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a freshly booked parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel, excluding status
	// transitions (see UpdateStatus). Returns a not-found error if the
	// parcel no longer exists.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateStatus persists a status transition with compare-and-set
	// semantics: the write applies only if the stored status still equals
	// previous. When a concurrent writer got there first, a conflict error
	// is returned and the aggregate's new status is not persisted.
	UpdateStatus(ctx context.Context, aggregate *parcel.Parcel, previous parcel.Status) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// CountByStatus counts parcels currently holding the given status.
	// Always recomputed from stored rows, never cached.
	CountByStatus(ctx context.Context, status parcel.Status) (int64, error)
}
