package linalg

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with batch-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogBatch logs the outcome of a batch operation.
func (l *Logger) LogBatch(ctx context.Context, op Op, count, failed int, err error) {
	switch {
	case err != nil && failed == 0:
		l.WarnContext(ctx, "batch aborted",
			"op", string(op),
			"count", count,
			"error", err,
		)
	case err != nil:
		l.ErrorContext(ctx, "batch failed",
			"op", string(op),
			"count", count,
			"failed", failed,
			"error", err,
		)
	default:
		l.DebugContext(ctx, "batch completed",
			"op", string(op),
			"count", count,
		)
	}
}
