package linmath

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with linmath-specific helpers.
// This provides structured logging with consistent field names.
//
// The operations in this package never log. Logging happens in callers that run
// many operations at once, such as the batch package.
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
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an operation name field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBatch logs the outcome of a batch of operations.
// failed is the number of items that were not processed successfully.
func (l *Logger) LogBatch(ctx context.Context, op string, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"failed", failed,
			"error", err,
		)
	case failed > 0:
		l.WarnContext(ctx, "batch completed with failures",
			"op", op,
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	default:
		l.DebugContext(ctx, "batch completed",
			"op", op,
			"count", count,
		)
	}
}
