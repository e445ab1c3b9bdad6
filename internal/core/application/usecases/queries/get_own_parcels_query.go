// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetOwnParcelsQueryIsNotConstructed = errors.New(
		"GetOwnParcelsQuery must be created via NewGetOwnParcelsQuery constructor",
	)
)

// GetOwnParcelsQuery retrieves the parcels booked by one customer.
// Used by the customer-facing listing so a customer only ever sees
// parcels they created themselves.
//
// Example:
//
//	query, err := NewGetOwnParcelsQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	parcels, err := handler.Handle(ctx, query)
type GetOwnParcelsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnParcelsQuery creates a query scoped to one customer identity.
func NewGetOwnParcelsQuery(customerID kernel.UUID) (GetOwnParcelsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOwnParcelsQuery{}, err
	}
	return GetOwnParcelsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the identity whose parcels are requested.
func (q GetOwnParcelsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q GetOwnParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnParcelsQueryIsNotConstructed)
}
