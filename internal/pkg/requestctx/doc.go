// Package requestctx carries per-request metadata (request ID, start time,
// path, method) through context.Context.
//
// The context is bound once by the request ID middleware and flows through
// every layer via the ctx parameter. Readers that may run outside a request
// scope (the logger, the error boundary) use RequestID, which falls back to
// the NoRequestID sentinel instead of failing.
package requestctx
