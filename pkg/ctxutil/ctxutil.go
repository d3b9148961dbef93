package ctxutil

import (
	"context"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

type ctxKey string

const (
	credentialIDKey ctxKey = "credential_id"
	requestIDKey    ctxKey = "request_id"
)

// WithCredentialID stores the authenticated credential ID in the context.
func WithCredentialID(ctx context.Context, id domain.ID) context.Context {
	return context.WithValue(ctx, credentialIDKey, id)
}

// CredentialIDFromCtx extracts the authenticated credential ID from the context.
// Returns 0 and false if the value is missing, zero, or of the wrong type.
func CredentialIDFromCtx(ctx context.Context) (domain.ID, bool) {
	id, ok := ctx.Value(credentialIDKey).(domain.ID)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
