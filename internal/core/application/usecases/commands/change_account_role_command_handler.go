package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/account"
)

// ChangeAccountRoleCommandHandler changes an account's role.
type ChangeAccountRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewChangeAccountRoleCommandHandler creates a handler for role changes.
func NewChangeAccountRoleCommandHandler(uowFactory AccountUoWFactory) ChangeAccountRoleCommandHandler {
	return ChangeAccountRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change and returns the updated account.
// A missing account surfaces as not-found.
func (h *ChangeAccountRoleCommandHandler) Handle(ctx context.Context, cmd ChangeAccountRoleCommand) (*account.Account, error) {
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

	repo := uow.AccountRepository()
	a, err := repo.Get(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}

	if err = a.ChangeRole(cmd.Role()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
