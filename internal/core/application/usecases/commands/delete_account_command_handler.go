package commands

import "context"

// DeleteAccountCommandHandler deletes an account.
type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewDeleteAccountCommandHandler creates a handler for account deletion.
func NewDeleteAccountCommandHandler(uowFactory AccountUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. A missing account surfaces as not-found
// and nothing is mutated.
func (h *DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccountRepository().Delete(ctx, cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
