package queries

import (
	"context"
	"database/sql"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler retrieves the full parcel listing with
// customer and agent names resolved via account joins.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for the admin listing query.
// Requires a GORM database connection for query execution.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve every parcel, newest first.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) ([]AdminParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]AdminParcelQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.customer_id,
			c.name,
			p.agent_id,
			a.name,
			p.pickup_address,
			p.delivery_address,
			p.size,
			p.cash_on_delivery,
			p.status,
			p.created_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN accounts c ON c.id = p.customer_id
		LEFT JOIN accounts a ON a.id = p.agent_id
		ORDER BY p.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp AdminParcelQueryResponse
		var id, customerID uuid.UUID
		var agentID uuid.NullUUID
		var customerName, agentName sql.NullString

		err = rows.Scan(
			&id,
			&customerID,
			&customerName,
			&agentID,
			&agentName,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.Size,
			&resp.CashOnDelivery,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = ownerID
		resp.CustomerName = customerName.String

		if agentID.Valid {
			assignee, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AgentID = &assignee
			resp.AgentName = agentName.String
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
