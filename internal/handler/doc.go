// Package handler contains HTTP request handlers for the People API.
//
// Handlers are the entry point for HTTP requests, responsible for:
//   - Request parsing and validation
//   - Calling the service layer
//   - Response envelope formatting
//
// # Error Handling
//
// Handlers never write error bodies themselves. They return application
// errors (or raw errors) up to the fiber ErrorHandler, the single error
// boundary, which maps them to the uniform JSON error envelope.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
