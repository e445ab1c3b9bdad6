package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetParcelStatsQueryHandler computes the headline parcel counters.
type GetParcelStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatsQueryHandler creates a handler for the stats query.
// Requires a GORM database connection for query execution.
func NewGetParcelStatsQueryHandler(db *gorm.DB) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{db: db}
}

// Handle executes the query and returns the total, in-transit and
// delivered parcel counts in a single scan of the parcel table.
func (h GetParcelStatsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatsQuery,
) (GetParcelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	var stats GetParcelStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM parcels
	`, parcel.InTransit.String(), parcel.Delivered.String()).Row()

	if err := row.Scan(&stats.Total, &stats.InTransit, &stats.Delivered); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	return stats, nil
}
