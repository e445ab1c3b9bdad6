// Package account contains the Account aggregate and the Role value object.
// Every account carries exactly one role (customer, agent, or admin) which
// scopes the operations the identity may perform. Credential material is
// held as a bcrypt hash and never leaves the aggregate through read models.
package account
