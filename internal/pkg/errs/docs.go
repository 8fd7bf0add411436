// Package errs provides standardized error types for the route planning application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a domain rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsInvalid)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Keeping all error construction behind these types makes error classification
// uniform across domain, application, and adapter layers.
package errs
