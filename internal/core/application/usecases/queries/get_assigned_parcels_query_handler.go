package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignedParcelsQueryHandler retrieves an agent's workload from the database.
type GetAssignedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedParcelsQueryHandler creates a handler for agent workload queries.
// Requires a GORM database connection for query execution.
func NewGetAssignedParcelsQueryHandler(db *gorm.DB) GetAssignedParcelsQueryHandler {
	return GetAssignedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels assigned to the agent.
// Returns the newest parcels first.
func (h GetAssignedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedParcelsQuery,
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
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, query.AgentID().String()).Rows()
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
