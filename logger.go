package rowsel

import (
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/rowsel/core"
)

// Logger wraps slog.Logger with rowsel-specific helpers.
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

// WithRange adds a range field to the logger.
func (l *Logger) WithRange(r core.Range) *Logger {
	return &Logger{
		Logger: l.Logger.With("range", r.String()),
	}
}

// LogForEach logs a chunked for-each run.
func (l *Logger) LogForEach(r core.Range, baseSize int, parallel bool, chunks int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("for-each failed",
			"range", r.String(),
			"base_size", baseSize,
			"parallel", parallel,
			"chunks", chunks,
			"error", err,
		)
		return
	}
	l.Debug("for-each completed",
		"range", r.String(),
		"base_size", baseSize,
		"parallel", parallel,
		"chunks", chunks,
		"elapsed", elapsed,
	)
}

// LogMaterialize logs a mask materialization.
func (l *Logger) LogMaterialize(length, selected int, contiguous bool, elapsed time.Duration) {
	l.Debug("mask materialized",
		"len", length,
		"selected", selected,
		"contiguous", contiguous,
		"elapsed", elapsed,
	)
}

// LogPartition logs a rejected or accepted partition request.
func (l *Logger) LogPartition(n, baseSize, chunks int, err error) {
	if err != nil {
		l.Warn("partition rejected",
			"len", n,
			"base_size", baseSize,
			"error", err,
		)
		return
	}
	l.Debug("partition planned",
		"len", n,
		"base_size", baseSize,
		"chunks", chunks,
	)
}
