// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password and
// token cryptography, HTTP response writing, HTTP client initialization,
// bearer header parsing and JWT handling.
package utils

import (
	"context"

	"github.com/MKhiriev/go-travel-board/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authentication middleware stores
// the caller's [models.Identity].
//
// Example of writing a value to the context:
//
//	ctx := utils.WithIdentity(ctx, identity)
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated caller from the context.
//
// Returns the identity and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// TraceIDHeader carries the request trace id between the services.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("trace_id")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by WithTraceID, or ""
// when there is none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
