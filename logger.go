package dedupe

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dedupe-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDisplay adds a display id field to the logger.
func (l *Logger) WithDisplay(displayID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("display", displayID),
	}
}

// WithPhase adds a pass phase field to the logger.
func (l *Logger) WithPhase(phase Phase) *Logger {
	return &Logger{
		Logger: l.Logger.With("phase", string(phase)),
	}
}

// LogPlan logs the outcome of filter-plan construction.
func (l *Logger) LogPlan(ctx context.Context, displayID string, rawFields, renderedFields int, err error) {
	if err != nil {
		l.WarnContext(ctx, "settings resolution degraded to defaults",
			"display", displayID,
			"error", err,
		)
	}
	l.DebugContext(ctx, "filter plan built",
		"display", displayID,
		"raw_fields", rawFields,
		"rendered_fields", renderedFields,
	)
}

// LogPass logs the outcome of one detection pass.
func (l *Logger) LogPass(ctx context.Context, phase Phase, rows, removed int) {
	if removed > 0 {
		l.InfoContext(ctx, "duplicate rows removed",
			"phase", string(phase),
			"rows", rows,
			"removed", removed,
		)
	} else {
		l.DebugContext(ctx, "pass completed",
			"phase", string(phase),
			"rows", rows,
		)
	}
}
