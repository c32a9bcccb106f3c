// Package utils holds helpers shared by the HTTP layer, the adapters and the
// services: request context keys, HMAC hashing, JSON responses, the outgoing
// HTTP client, JWT handling and id generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// Keys under which the auth middleware stores the editor identity.
var (
	UserIDCtxKey      = contextKey("userID")
	AccessLevelCtxKey = contextKey("accessLevel")
	SessionIDCtxKey   = contextKey("sessionID")
)

func fromContext[T any](ctx context.Context, key contextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

// GetUserIDFromContext returns the backend user id set by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	return fromContext[int64](ctx, UserIDCtxKey)
}

// GetAccessLevelFromContext returns the editor's access level. A missing
// value yields level 0 and ok == false.
func GetAccessLevelFromContext(ctx context.Context) (int, bool) {
	return fromContext[int](ctx, AccessLevelCtxKey)
}

// GetSessionIDFromContext returns the sync session id. An empty id is
// reported as missing.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := fromContext[string](ctx, SessionIDCtxKey)
	return id, ok && id != ""
}
