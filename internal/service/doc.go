// Package service contains the business logic layer for the People API.
//
// Services coordinate between handlers and repositories. They depend on
// repository interfaces defined in this package, following the dependency
// inversion principle.
//
// The service layer raises domain errors (not-found) explicitly. It does
// not validate input (the handler does, before the service is invoked) and
// does not catch storage failures (the boundary maps them).
//
// All services are safe for concurrent use from multiple goroutines.
package service
