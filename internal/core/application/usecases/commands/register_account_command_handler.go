package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/pkg/errs"
)

// RegisterAccountCommandHandler creates new accounts. Email addresses are
// unique; registering an address already in use yields a conflict.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for registrations.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the created account.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := account.NewAccount(cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Role(), cmd.PasswordHash())
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

	repo := uow.AccountRepository()

	_, err = repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewConflictError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
