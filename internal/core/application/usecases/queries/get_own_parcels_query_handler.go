package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnParcelsQueryHandler retrieves a customer's parcels from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOwnParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnParcelsQueryHandler creates a handler for customer parcel queries.
// Requires a GORM database connection for query execution.
func NewGetOwnParcelsQueryHandler(db *gorm.DB) GetOwnParcelsQueryHandler {
	return GetOwnParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels booked by the customer.
// Returns the newest parcels first.
func (h GetOwnParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOwnParcelsQuery,
) ([]ParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		parcel, scanErr := scanParcelRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, parcel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
