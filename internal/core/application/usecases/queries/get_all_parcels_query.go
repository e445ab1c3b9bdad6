package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetAllParcelsQueryIsNotConstructed = errors.New(
		"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
	)
)

// GetAllParcelsQuery retrieves every parcel for the admin listing and the
// report exports. Unlike the customer and agent listings it resolves the
// customer and agent display names so exports are self-contained.
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates a parameterless admin listing query.
func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}

// AdminParcelQueryResponse is one row of the admin parcel listing.
// CustomerName falls back to empty when the account was deleted;
// AgentName is empty while no agent is assigned.
type AdminParcelQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	AgentID         *kernel.UUID
	AgentName       string
	PickupAddress   string
	DeliveryAddress string
	Size            string
	CashOnDelivery  bool
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
