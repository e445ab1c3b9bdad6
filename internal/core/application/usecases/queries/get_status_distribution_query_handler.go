package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetStatusDistributionQueryHandler computes the parcel status histogram.
type GetStatusDistributionQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusDistributionQueryHandler creates a handler for the histogram query.
// Requires a GORM database connection for query execution.
func NewGetStatusDistributionQueryHandler(db *gorm.DB) GetStatusDistributionQueryHandler {
	return GetStatusDistributionQueryHandler{db: db}
}

// Handle executes the query and returns one bucket per lifecycle status
// in lifecycle order. Statuses with no parcels appear with a zero count.
func (h GetStatusDistributionQueryHandler) Handle(
	ctx context.Context,
	query GetStatusDistributionQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[string]int64)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM parcels
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	buckets := make([]StatusCount, 0, len(parcel.AllStatuses()))
	for _, status := range parcel.AllStatuses() {
		buckets = append(buckets, StatusCount{
			Status: status.String(),
			Count:  counts[status.String()],
		})
	}

	return buckets, nil
}
