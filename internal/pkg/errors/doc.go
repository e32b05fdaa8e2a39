// Package errors provides application error types for the People API.
//
// This package defines:
//   - AppError type with a machine-readable code and HTTP status
//   - Error constructors for the closed set of error kinds
//   - Error type checking helpers
//
// # Error Kinds
//
//   - APP_ERROR: base application error (500)
//   - BAD_REQUEST: malformed or out-of-range input, carries field-level
//     details (400)
//   - NOT_FOUND: identifier has no matching entity (404)
//   - INTERNAL_SERVER_ERROR: any unrecognized failure, assigned at the
//     boundary (500)
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.NotFound("person with id " + id + " not found")
//	return apperrors.BadRequest("invalid person payload").WithDetails(details)
//
// Check error kinds:
//
//	if apperrors.IsNotFound(err) {
//	    // Handle not found
//	}
//
// # Error Wrapping
//
// Errors support wrapping with fmt.Errorf:
//
//	return fmt.Errorf("create person: %w", apperrors.BadRequest("..."))
package errors
