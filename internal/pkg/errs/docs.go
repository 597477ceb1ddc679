// Package errs provides the typed errors shared by every layer of the
// fulfillment service.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value lies outside of an allowed range
//   - ObjectNotFoundError: a repository lookup found nothing
//   - RetryableError: an external collaborator timed out or was unavailable
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Stage-local rejections (insufficient inventory, tolerance failures, capacity
// rejects) are not errors of this package; they live next to the aggregate that
// produces them. Only RetryableError is expected to travel up to the caller as a
// signal to repeat the operation.
package errs
