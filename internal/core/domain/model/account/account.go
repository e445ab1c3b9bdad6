package account

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account represents a user of the system with exactly one role.
//
// The password hash is internal state used only for credential
// verification; read models and API responses never include it.
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	passwordHash string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewAccount creates a new account with validation. The password hash must
// already be computed by the caller (the identity adapter owns hashing).
func NewAccount(id kernel.UUID, name, email string, role Role, passwordHash string) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setRole(role),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persisted state.
func RestoreAccount(
	id kernel.UUID,
	name, email string,
	role Role,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	a, err := NewAccount(id, name, email, role, passwordHash)
	if err != nil {
		return nil, err
	}

	a.createdAt = createdAt
	a.updatedAt = updatedAt
	return a, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the account email.
func (a *Account) Email() string {
	return a.email
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// PasswordHash returns the stored credential hash for verification by the
// identity adapter.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// CreatedAt returns the store-maintained creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the store-maintained last-update timestamp.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// ChangeRole replaces the account's role. Only reachable through the
// admin-scoped command.
func (a *Account) ChangeRole(role Role) error {
	return a.setRole(role)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}
