// Package id generates and validates identifiers: time-ordered UUIDv7 for
// person rows, UUIDv4 for request correlation.
package id
