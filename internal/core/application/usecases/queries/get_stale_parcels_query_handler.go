package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetStaleParcelsQueryHandler finds stuck deliveries in the database.
type GetStaleParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleParcelsQueryHandler creates a handler for staleness queries.
// Requires a GORM database connection for query execution.
func NewGetStaleParcelsQueryHandler(db *gorm.DB) GetStaleParcelsQueryHandler {
	return GetStaleParcelsQueryHandler{db: db}
}

// Handle returns every parcel whose status is non-terminal and whose last
// update is older than the threshold, oldest first.
func (h GetStaleParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleParcelsQuery,
) ([]ParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.Threshold())
	parcels := make([]ParcelQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			agent_id,
			pickup_address,
			delivery_address,
			size,
			cash_on_delivery,
			status,
			created_at,
			updated_at
		FROM parcels
		WHERE status NOT IN (?, ?)
		  AND updated_at < ?
		ORDER BY updated_at
	`, parcel.Delivered.String(), parcel.Failed.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, scanErr := scanParcelRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
