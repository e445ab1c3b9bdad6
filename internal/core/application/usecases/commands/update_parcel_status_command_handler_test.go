package commands_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredParcel(t *testing.T, customerID kernel.UUID, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), customerID, nil,
		"12 North St", "3 Harbor Rd", "medium", false,
		status, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestUpdateParcelStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	stored := restoredParcel(t, customerID, parcel.Booked)
	cmd, _ := commands.NewUpdateParcelStatusCommand(stored.ID(), parcel.PickedUp)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, stored, parcel.Booked).Return(nil).Once(),
		repo.On("CountByStatus", mock.Anything, parcel.PickedUp).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PickedUp, updated.Status())

	require.Len(t, notifier.IdentityEvents, 1, "exactly one event per transition")
	evt := notifier.IdentityEvents[0]
	assert.True(t, evt.Identity.IsEqual(customerID))
	assert.Equal(t, ports.EventParcelStatusUpdated, evt.Event)
	payload, ok := evt.Payload.(commands.StatusUpdatedPayload)
	require.True(t, ok)
	assert.Equal(t, "Picked Up", payload.StatusKey)
	assert.Equal(t, int64(3), payload.Count)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	stored := restoredParcel(t, kernel.NewUUID(), parcel.Booked)
	// Booked -> In Transit skips Picked Up; adjacency is enforced.
	cmd, _ := commands.NewUpdateParcelStatusCommand(stored.ID(), parcel.InTransit)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Empty(t, notifier.IdentityEvents)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateParcelStatusCommandHandler_Handle_TerminalParcel(t *testing.T) {
	ctx := t.Context()
	stored := restoredParcel(t, kernel.NewUUID(), parcel.Delivered)
	cmd, _ := commands.NewUpdateParcelStatusCommand(stored.ID(), parcel.Failed)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory, &RecordingNotifier{})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestUpdateParcelStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.PickedUp)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, parcelID).Return(nil, errs.NewObjectNotFoundError("parcel", parcelID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory, &RecordingNotifier{})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateParcelStatusCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	stored := restoredParcel(t, kernel.NewUUID(), parcel.Booked)
	cmd, _ := commands.NewUpdateParcelStatusCommand(stored.ID(), parcel.PickedUp)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	repo.On("UpdateStatus", mock.Anything, stored, parcel.Booked).
		Return(errs.NewConflictError("parcel", stored.ID().String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewUpdateParcelStatusCommandHandler(factory, notifier)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Empty(t, notifier.IdentityEvents, "losing writer must not notify")
}
