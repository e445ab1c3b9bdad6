package parcel

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents one shipment request. It is the aggregate root that
// manages the parcel lifecycle from booking through delivery or failure.
//
// Parcel maintains these invariants:
//   - Must have a valid unique identifier and a valid customer
//   - Pickup and delivery addresses are non-empty
//   - Status always holds one of the five defined lifecycle values
//   - An agent may be unset only while the parcel is Booked
//   - Status changes follow the lifecycle transition table
//
// Private fields keep the aggregate encapsulated; all mutations go through
// validated methods.
type Parcel struct {
	// id is the unique identifier, assigned at booking and immutable
	id kernel.UUID

	// customerID references the owning customer, immutable after booking
	customerID kernel.UUID

	// agentID references the fulfilling agent (nil until an admin assigns one)
	agentID *kernel.UUID

	// pickupAddress and deliveryAddress are free-form, required at booking
	pickupAddress   string
	deliveryAddress string

	// size and cashOnDelivery are descriptive attributes, not state-affecting
	size           string
	cashOnDelivery bool

	// status is the current state in the parcel lifecycle
	status Status

	// createdAt and updatedAt are maintained by the store
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a freshly booked Parcel with validation. This is the only
// way to create a parcel for a new booking; the status is always Booked and
// no agent is assigned.
//
// Returns a ValidationError-kind error if either address is empty or an
// identifier is invalid.
//
// Example:
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), customerID, "12 North St", "3 Harbor Rd", "medium", true)
//	if err != nil {
//	    return err
//	}
func NewParcel(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	size string,
	cashOnDelivery bool,
) (*Parcel, error) {
	p := &Parcel{
		size:           size,
		cashOnDelivery: cashOnDelivery,
		status:         Booked,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setPickupAddress(pickupAddress),
		p.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persisted state. Used by
// repositories when rehydrating aggregates; all invariants are revalidated
// so corrupted rows cannot produce an invalid aggregate.
func RestoreParcel(
	id kernel.UUID,
	customerID kernel.UUID,
	agentID *kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	size string,
	cashOnDelivery bool,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, customerID, pickupAddress, deliveryAddress, size, cashOnDelivery)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err = agentID.Validate(); err != nil {
			return nil, err
		}
		p.agentID = agentID
	}

	p.status = status
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
// Returns ErrParcelIsNotConstructed otherwise.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Customer returns the owning customer's identifier.
func (p *Parcel) Customer() kernel.UUID {
	return p.customerID
}

// Agent returns the assigned agent's identifier, or nil if unassigned.
func (p *Parcel) Agent() *kernel.UUID {
	return p.agentID
}

// PickupAddress returns the pickup address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// Size returns the descriptive size attribute.
func (p *Parcel) Size() string {
	return p.size
}

// CashOnDelivery reports whether the parcel is paid on delivery.
func (p *Parcel) CashOnDelivery() bool {
	return p.cashOnDelivery
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the store-maintained creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the store-maintained last-update timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// AssignAgent sets or replaces the fulfilling agent.
//
// Assignment is allowed in any non-terminal status; once a parcel is
// Delivered or Failed its agent is frozen.
//
// Returns an error if the agent ID is invalid or the parcel is terminal.
func (p *Parcel) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if p.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("agent",
			errors.New("cannot assign an agent to a parcel in a terminal status"))
	}

	p.agentID = &agentID
	return nil
}

// ChangeStatus transitions the parcel to the next lifecycle status.
//
// The transition must be an allowed edge from the current status; same-state
// updates and any mutation of a terminal status are rejected with an
// InvalidTransition error.
func (p *Parcel) ChangeStatus(next Status) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setCustomerID validates and sets the owning customer. A parcel never
// exists without a customer.
func (p *Parcel) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	p.pickupAddress = address
	return nil
}

func (p *Parcel) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	p.deliveryAddress = address
	return nil
}
