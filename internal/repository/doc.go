// Package repository contains data access implementations for the People API.
//
// Repository interfaces are defined at the service layer (consumer-defined
// interfaces); this package tree holds the concrete implementations.
//
// PostgreSQL is the only data store. Storage-layer failures propagate
// wrapped but untranslated; the error boundary maps them to internal
// errors. All implementations are safe for concurrent use; connection
// pooling is managed at the database layer.
package repository
