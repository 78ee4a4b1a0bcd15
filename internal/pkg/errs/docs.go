// Package errs provides standardized error types for the movebox application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors raised while constructing value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its permitted range
//   - ObjectNotFoundError: an entity could not be located
//
// Operation errors raised while executing job and order status transitions:
//   - NotAuthenticatedError: no authenticated actor, raised before any I/O
//   - ForbiddenError: wrong actor for the action
//   - ConflictError: a conditional update lost a race (e.g. job already claimed)
//   - InvalidStateError: transition not legal from the current status
//   - InternalError: unexpected repository failure or structural invariant
//     violation, surfaced to the caller as fatal
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps the sentinels onto status codes; application code
// only ever classifies with errors.Is.
package errs
