package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrBookParcelCommandIsNotConstructed = errors.New(
		"BookParcelCommand must be created via NewBookParcelCommand constructor",
	)
)

// BookParcelCommand represents a customer's request to book a parcel.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewBookParcelCommand(parcelID, customerID, "12 North St", "3 Harbor Rd", "medium", true)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	handler := NewBookParcelCommandHandler(uowFactory, notifier)
//	booked, err := handler.Handle(ctx, cmd)
type BookParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	customerID      kernel.UUID
	pickupAddress   string
	deliveryAddress string
	size            string
	cashOnDelivery  bool

	guard guard.ConstructorGuard
}

// NewBookParcelCommand creates a booking command. Validates that both IDs
// are valid and both addresses are present.
func NewBookParcelCommand(
	parcelID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	size string,
	cashOnDelivery bool,
) (BookParcelCommand, error) {
	cmd := BookParcelCommand{
		size:           size,
		cashOnDelivery: cashOnDelivery,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCustomerID(customerID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return BookParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookParcelCommand) Validate() error {
	return c.guard.Validate(ErrBookParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c BookParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CustomerID returns the booking customer's identifier.
func (c BookParcelCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the pickup address.
func (c BookParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (c BookParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Size returns the descriptive size attribute.
func (c BookParcelCommand) Size() string {
	return c.size
}

// CashOnDelivery reports whether the parcel is paid on delivery.
func (c BookParcelCommand) CashOnDelivery() bool {
	return c.cashOnDelivery
}

func (c *BookParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *BookParcelCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *BookParcelCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	c.pickupAddress = address
	return nil
}

func (c *BookParcelCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}
