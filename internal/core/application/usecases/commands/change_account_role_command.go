package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrChangeAccountRoleCommandIsNotConstructed = errors.New(
		"ChangeAccountRoleCommand must be created via NewChangeAccountRoleCommand constructor",
	)
)

// ChangeAccountRoleCommand represents an admin's request to change an
// account's role.
type ChangeAccountRoleCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	role      account.Role

	guard guard.ConstructorGuard
}

// NewChangeAccountRoleCommand creates a role change command.
func NewChangeAccountRoleCommand(accountID kernel.UUID, role account.Role) (ChangeAccountRoleCommand, error) {
	cmd := ChangeAccountRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRole(role),
	); err != nil {
		return ChangeAccountRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeAccountRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeAccountRoleCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to change.
func (c ChangeAccountRoleCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the new role.
func (c ChangeAccountRoleCommand) Role() account.Role {
	return c.role
}

func (c *ChangeAccountRoleCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *ChangeAccountRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
