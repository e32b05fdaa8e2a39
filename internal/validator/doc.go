// Package validator wraps go-playground/validator with error formatting
// that yields {field, message} pairs, where field is the camelCase JSON
// name of the offending input field. The pairs attach to BAD_REQUEST
// application errors and surface in the error envelope unchanged.
package validator
