package vecmath

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with vecmath-specific helpers.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(nopHandler{})}
}

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogBatch logs a completed batch operation.
//
// zeroed is the number of zero-length vectors the operation replaced with
// zero instead of failing.
func (l *Logger) LogBatch(ctx context.Context, count, zeroed, workers int, kernel string, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch failed",
			"count", count,
			"kernel", kernel,
			"error", err,
		)
	case zeroed > 0:
		l.WarnContext(ctx, "batch completed with zero-length vectors",
			"count", count,
			"zeroed", zeroed,
			"workers", workers,
			"kernel", kernel,
		)
	default:
		l.DebugContext(ctx, "batch completed",
			"count", count,
			"workers", workers,
			"kernel", kernel,
		)
	}
}

var loggerPtr atomic.Pointer[Logger]

func init() {
	loggerPtr.Store(NoopLogger())
}

// SetLogger configures the logger used by vecmath and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	loggerPtr.Store(l)
}

// DefaultLogger returns the logger installed with SetLogger.
func DefaultLogger() *Logger {
	return loggerPtr.Load()
}
