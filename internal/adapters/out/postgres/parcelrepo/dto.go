// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Implements the repository pattern for the parcel domain
// aggregate, handling the conversion between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status is stored as its display string so raw rows read naturally and the
// histogram query can group without a mapping table.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string
	DeliveryAddress string
	Size            string
	CashOnDelivery  bool
	Status          string    `gorm:"type:varchar(16);index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.Customer().Bytes(),
		AgentID:         agentID,
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Size:            aggregate.Size(),
		CashOnDelivery:  aggregate.CashOnDelivery(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the aggregate via RestoreParcel so corrupted rows surface
// as validation errors instead of invalid aggregates.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		customerID,
		agentID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.Size,
		dto.CashOnDelivery,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
