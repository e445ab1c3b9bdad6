// Package errs provides standardized error types for the parcelhub application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the service
// distinguishes:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: a referenced parcel or account is absent
//   - UnauthenticatedError: no valid credential was presented
//   - ForbiddenError: a valid identity attempted a disallowed operation
//   - InvalidTransitionError: a parcel status change violates the lifecycle rules
//   - ConflictError: a concurrent writer won a compare-and-set race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// HTTP adapters classify errors with errors.Is against the sentinels; store
// failures that match none of them are surfaced as a generic server failure.
package errs
