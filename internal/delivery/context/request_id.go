package context

import (
	"context"
	"log/slog"

	"displaygram/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyRequestMeta is the key for storing the caller's client information in context.
	KeyRequestMeta ContextKey = "request_meta"

	// KeyIdentity is the key for storing the verified caller identity in context.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithRequestMeta returns a new context carrying the caller's client information.
func WithRequestMeta(ctx context.Context, meta entity.RequestMeta) context.Context {
	return context.WithValue(ctx, KeyRequestMeta, meta)
}

// GetRequestMeta extracts the caller's client information.
// If not found, returns the zero value.
func GetRequestMeta(ctx context.Context) entity.RequestMeta {
	meta, _ := ctx.Value(KeyRequestMeta).(entity.RequestMeta)

	return meta
}

// WithIdentity returns a new context carrying the verified caller identity.
func WithIdentity(ctx context.Context, identity *entity.IdentityToken) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the verified caller identity.
// If not found, returns nil.
func GetIdentity(ctx context.Context) *entity.IdentityToken {
	if identity, ok := ctx.Value(KeyIdentity).(*entity.IdentityToken); ok {
		return identity
	}

	return nil
}
