package utils

import (
	"context"
)

type contextKey string

const (
	UsernameKey  contextKey = "username"
	RoleKey      contextKey = "role"
	RequestIDKey contextKey = "request_id"
)

func SetUserContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(UsernameKey)
	if val == nil {
		return "", false
	}

	username, ok := val.(string)
	return username, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RoleKey)
	if val == nil {
		return "", false
	}

	role, ok := val.(string)
	return role, ok
}

// SetRequestIDContext attaches the request ID set by the middleware.
func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}
