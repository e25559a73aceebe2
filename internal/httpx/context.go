package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	accountIDKey contextKey = "accountID"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// AccountIDFrom retrieves the authenticated account ID from the request context.
func AccountIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(accountIDKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the account role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithAccount returns a new context with the account ID and role.
func ContextWithAccount(ctx context.Context, accountID, role string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	return context.WithValue(ctx, roleKey, role)
}

func RequestIDFrom(r *http.Request) string {
	return RequestIDFromContext(r.Context())
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
