// Package services contains stateless domain services that do not belong to
// a single aggregate. The access policy implemented here is the authorization
// gate: a static mapping from role to the named operations that role may
// perform, evaluated per request with no side effects.
package services
