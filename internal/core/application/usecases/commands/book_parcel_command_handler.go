package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

// ParcelEventPayload is the wire shape of a parcel carried inside
// parcelBooked and parcelAssigned events.
type ParcelEventPayload struct {
	ID              string `json:"id"`
	Customer        string `json:"customer"`
	Agent           string `json:"agent,omitempty"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
	Size            string `json:"size"`
	CashOnDelivery  bool   `json:"cod"`
	Status          string `json:"status"`
}

// NewParcelEventPayload builds the event payload for a parcel.
func NewParcelEventPayload(p *parcel.Parcel) ParcelEventPayload {
	payload := ParcelEventPayload{
		ID:              p.ID().String(),
		Customer:        p.Customer().String(),
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
		Size:            p.Size(),
		CashOnDelivery:  p.CashOnDelivery(),
		Status:          p.Status().String(),
	}
	if agent := p.Agent(); agent != nil {
		payload.Agent = agent.String()
	}
	return payload
}

// BookParcelCommandHandler handles the business logic for booking a parcel.
// Persists the new parcel in Booked status and, after commit, pushes a
// parcelBooked event to the customer's room and a parcelAssigned signal to
// the agents audience so dashboards refresh.
type BookParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
}

// NewBookParcelCommandHandler creates a handler for parcel bookings.
func NewBookParcelCommandHandler(uowFactory ParcelUoWFactory, notifier ports.Notifier) BookParcelCommandHandler {
	return BookParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the booking command and returns the created parcel.
// Notification is fire-and-forget: the booking succeeds whether or not any
// session is listening.
func (h *BookParcelCommandHandler) Handle(ctx context.Context, cmd BookParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	booked, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.CustomerID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.Size(),
		cmd.CashOnDelivery(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, booked); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	payload := NewParcelEventPayload(booked)
	h.notifier.NotifyIdentity(booked.Customer(), ports.EventParcelBooked, payload)
	h.notifier.NotifyAgents(ports.EventParcelAssigned, payload)

	return booked, nil
}
