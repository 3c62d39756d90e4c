package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithInstanceID creates a child logger with an instance_id field
func WithInstanceID(ctx context.Context, instanceID string) context.Context {
	return withStr(ctx, "instance_id", instanceID)
}

// WithToolID creates a child logger with a tool_id field
func WithToolID(ctx context.Context, toolID string) context.Context {
	return withStr(ctx, "tool_id", toolID)
}

// WithDialog creates a child logger with a dialog field
func WithDialog(ctx context.Context, dialogID string) context.Context {
	return withStr(ctx, "dialog", dialogID)
}

func withStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str(key, value).Logger()
	return WithContext(ctx, childLogger)
}
