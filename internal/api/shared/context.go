package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// ClaimsEmailContextKey is the context key for the authenticated
	// caller's email, set by the auth middleware after verifying a token.
	ClaimsEmailContextKey ContextKey = "claimsEmail"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetClaimsEmail stores the verified claims email in the context.
func SetClaimsEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ClaimsEmailContextKey, email)
}

// GetClaimsEmail retrieves the verified claims email from the context.
// Returns the email and a boolean indicating if it was found.
func GetClaimsEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ClaimsEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
