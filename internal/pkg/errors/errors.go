package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeAppError   = "APP_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_SERVER_ERROR"
)

// FieldError is a field-level validation failure attached to a BAD_REQUEST
// error. Field is the dotted path into the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error with a machine-readable code and
// an HTTP status. It is constructed at the point of failure, propagated up
// unchanged, and converted to a JSON envelope at the boundary.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    []FieldError   `json:"details,omitempty"`
	Context    map[string]any `json:"-"`
	StatusCode int            `json:"-"`
	Err        error          `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext adds a free-form context value to the error
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithDetails attaches field-level validation details
func (e *AppError) WithDetails(details []FieldError) *AppError {
	e.Details = details
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New creates a new AppError
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// App creates a base application error (500)
func App(message string) *AppError {
	return New(CodeAppError, message, http.StatusInternalServerError)
}

// BadRequest creates a bad request error (400)
func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

// NotFound creates a not found error (404)
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Internal creates an internal server error (500)
func Internal(message string) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// GetAppError extracts an AppError from err if present
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == CodeBadRequest
	}
	return false
}
