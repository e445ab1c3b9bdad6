package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrDeleteAccountCommandIsNotConstructed = errors.New(
		"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
	)
)

// DeleteAccountCommand represents an admin's request to delete an account.
type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAccountCommand creates a deletion command.
func NewDeleteAccountCommand(accountID kernel.UUID) (DeleteAccountCommand, error) {
	cmd := DeleteAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return DeleteAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to delete.
func (c DeleteAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c *DeleteAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}
