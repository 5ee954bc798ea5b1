package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
	sessionIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithSessionID tags the context logger with a sync session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return WithField(ctx, "session_id", sessionID)
}

// SessionID extracts the session ID from context.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// WithDocument adds document context to the logger.
func WithDocument(ctx context.Context, documentID string) context.Context {
	return WithField(ctx, "document_id", documentID)
}

// WithOperation adds operation context to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logCtx := FromContext(ctx).With()
	switch v := value.(type) {
	case string:
		logCtx = logCtx.Str(key, v)
	case int:
		logCtx = logCtx.Int(key, v)
	case bool:
		logCtx = logCtx.Bool(key, v)
	case error:
		logCtx = logCtx.AnErr(key, v)
	default:
		logCtx = logCtx.Interface(key, v)
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}
