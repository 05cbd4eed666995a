// Package context carries request-scoped values from the echo layer down to the usecases,
// which only ever see a context.Context.
package context

import (
	"context"
	"log/slog"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func valueOf[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the id assigned by the RequestID middleware. A request that never went
// through it gets a fresh id so every response envelope still carries one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, KeyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := valueOf[*slog.Logger](ctx, KeyLogger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithPrincipal stores the verified access token payload of the caller.
func WithPrincipal(ctx context.Context, principal *entity.TokenPayload) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext returns the caller set by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (*entity.TokenPayload, bool) {
	principal, ok := valueOf[*entity.TokenPayload](ctx, KeyPrincipal)

	return principal, ok && principal != nil
}
