package queries

import (
	"database/sql"
	"time"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ParcelQueryResponse represents a parcel in the read model.
// AgentID is nil while no delivery agent has been assigned.
type ParcelQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	AgentID         *kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	Size            string
	CashOnDelivery  bool
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// scanParcelRow reads one row of the shared parcel column set:
// id, customer_id, agent_id, pickup_address, delivery_address,
// size, cash_on_delivery, status, created_at, updated_at.
func scanParcelRow(rows *sql.Rows) (ParcelQueryResponse, error) {
	var resp ParcelQueryResponse
	var id, customerID uuid.UUID
	var agentID uuid.NullUUID

	err := rows.Scan(
		&id,
		&customerID,
		&agentID,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.Size,
		&resp.CashOnDelivery,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ParcelQueryResponse{}, err
	}

	parcelID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return ParcelQueryResponse{}, idErr
	}
	resp.ID = parcelID

	ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
	if idErr != nil {
		return ParcelQueryResponse{}, idErr
	}
	resp.CustomerID = ownerID

	if agentID.Valid {
		assignee, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if idErr != nil {
			return ParcelQueryResponse{}, idErr
		}
		resp.AgentID = &assignee
	}

	return resp, nil
}
