// Package errs provides standardized error types for the delivery system.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by kind:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ObjectAlreadyExistsError: an entity with the same identity is already stored
//   - InvalidStateError: the operation is illegal for the entity's lifecycle state
//   - PolicyViolationError: a business rule rejected the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the kind
package errs
