package queries

import (
	"context"

	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves one parcel read model from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query to retrieve the parcel.
// Returns errs.ObjectNotFoundError when no parcel has the identifier.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (ParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelQueryResponse{}, err
	}

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
		WHERE id = ?
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return ParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelQueryResponse{}, err
		}
		return ParcelQueryResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID().String())
	}

	parcel, scanErr := scanParcelRow(rows)
	if scanErr != nil {
		return ParcelQueryResponse{}, scanErr
	}

	return parcel, nil
}
