// Package errs provides standardized error types for the parcel tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value falls outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidTransitionError: for when a lifecycle state change is not allowed
//   - VersionIsInvalidError: for when an optimistic concurrency check fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP boundary relies on these types to translate core failures into
// response codes: required/invalid values become bad requests, missing objects
// become not-found responses, and transition or version conflicts become
// conflict responses. Storage failures are propagated as-is and surface as
// internal errors.
package errs
