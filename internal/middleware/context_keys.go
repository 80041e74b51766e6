package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type so context values cannot collide with keys set
// by other packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	identityKey  = contextKey("identity")
)

// GetLoggerFromCtx retrieves the request-scoped logger, falling back to the
// default logger when the middleware did not run (e.g. in tests).
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetIdentityFromCtx retrieves the authenticated caller's external identity.
func GetIdentityFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(identityKey).(int64)
	return id, ok
}
