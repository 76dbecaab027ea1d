package utils

import (
	"context"
	"time"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID := ctx.Value(ContextUserIDKey)
	userIDStr, ok := userID.(string)
	return userIDStr, ok
}

// SessionData is the session state the middleware needs, independent of
// how sessions are stored.
type SessionData struct {
	UserID    string
	ExpiresAt time.Time
	Revoked   bool
}
