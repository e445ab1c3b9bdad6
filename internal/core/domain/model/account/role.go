package account

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Role represents the single authorization role attached to an account.
type Role string

const (
	// RoleCustomer books parcels and tracks their own shipments.
	RoleCustomer Role = "customer"

	// RoleAgent fulfills parcels assigned to them.
	RoleAgent Role = "agent"

	// RoleAdmin oversees users, assignments, and reporting.
	RoleAdmin Role = "admin"
)

// AllRoles returns the defined roles.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleAgent, RoleAdmin}
}

// RoleFromString parses a role name. Returns an error for anything other
// than "customer", "agent", or "admin".
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
