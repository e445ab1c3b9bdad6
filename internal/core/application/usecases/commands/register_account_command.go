package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/account"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// RegisterAccountCommand represents a request to create an account. The
// password arrives already hashed; hashing is owned by the identity adapter.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	name         string
	email        string
	role         account.Role
	passwordHash string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a registration command.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, email string,
	role account.Role,
	passwordHash string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRole(role),
		cmd.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier assigned to the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the account email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Role returns the requested role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// PasswordHash returns the bcrypt hash of the credential.
func (c RegisterAccountCommand) PasswordHash() string {
	return c.passwordHash
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterAccountCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = hash
	return nil
}
