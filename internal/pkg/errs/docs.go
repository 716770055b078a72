// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error classes the service exposes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: an order, rider or assignment cannot be found
//   - InvalidTransitionError: a status change is illegal in the current state
//   - VersionIsInvalidError: an aggregate version check failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Callers branch on the sentinels to map errors onto transport responses:
// validation errors become 400s, not-found 404s, invalid transitions 409s.
package errs
