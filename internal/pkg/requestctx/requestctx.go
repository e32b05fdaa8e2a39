package requestctx

import (
	"context"
	"time"
)

// NoRequestID is reported by RequestID when no request context is bound.
const NoRequestID = "no-request-context"

// Context carries per-request metadata for the duration of one request.
// It is bound to the request's context.Context by the middleware chain and
// read back by any code executing within that request, without explicit
// parameter threading beyond the ctx every call already takes.
type Context struct {
	RequestID string
	StartTime time.Time
	Path      string
	Method    string
	fields    map[string]any
}

// New creates a request context with the start time set to now.
func New(requestID, method, path string) *Context {
	return &Context{
		RequestID: requestID,
		StartTime: time.Now(),
		Path:      path,
		Method:    method,
	}
}

// Set stores an additional key/value pair on the request context.
func (rc *Context) Set(key string, value any) {
	if rc.fields == nil {
		rc.fields = make(map[string]any)
	}
	rc.fields[key] = value
}

// Get returns an additional value previously stored with Set.
func (rc *Context) Get(key string) (any, bool) {
	v, ok := rc.fields[key]
	return v, ok
}

type ctxKey struct{}

// With returns a context carrying rc. Concurrent requests each bind their
// own value; isolation follows from context.Context semantics.
func With(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// From returns the request context bound to ctx, or false when ctx is
// outside any request scope.
func From(ctx context.Context) (*Context, bool) {
	rc, ok := ctx.Value(ctxKey{}).(*Context)
	return rc, ok
}

// RequestID returns the bound request ID, or NoRequestID when absent.
func RequestID(ctx context.Context) string {
	if rc, ok := From(ctx); ok {
		return rc.RequestID
	}
	return NoRequestID
}
