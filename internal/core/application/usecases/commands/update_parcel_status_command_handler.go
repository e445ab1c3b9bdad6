package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
)

// StatusUpdatedPayload is the wire shape of the parcelStatusUpdated event.
// Count is the recomputed number of parcels currently at StatusKey, taken in
// the same transaction as the update. It is a point-in-time snapshot, not a
// delta, so receivers that see events out of order are never worse off than
// the latest event they received.
type StatusUpdatedPayload struct {
	StatusKey string `json:"statusKey"`
	Count     int64  `json:"count"`
}

// UpdateParcelStatusCommandHandler applies a lifecycle transition to a
// parcel. The read-validate-write sequence is protected by compare-and-set:
// if a concurrent caller transitioned the parcel between our read and write,
// the write is rejected with a conflict instead of silently overwriting.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory, notifier ports.Notifier) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle validates the transition against the parcel's current status,
// persists it, and pushes a parcelStatusUpdated event to the owning
// customer's room. Returns the updated parcel.
//
// Failure modes: not-found when the parcel is absent, invalid-transition
// when the edge is not in the lifecycle table, conflict when a concurrent
// update won the race.
func (h *UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()
	p, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	previous := p.Status()
	if err = p.ChangeStatus(cmd.Next()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, p, previous); err != nil {
		return nil, err
	}

	count, err := repo.CountByStatus(ctx, p.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyIdentity(p.Customer(), ports.EventParcelStatusUpdated, StatusUpdatedPayload{
		StatusKey: p.Status().String(),
		Count:     count,
	})

	return p, nil
}
