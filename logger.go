package unitvec

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// stepLogInterval bounds how often successful steps are logged.
const stepLogInterval = time.Second

// Logger wraps slog.Logger with unitvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	steps *rate.Sometimes
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
		steps:  &rate.Sometimes{First: 1, Interval: stepLogInterval},
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

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		steps:  l.steps,
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return l.with("count", count)
}

// WithShard adds shard bounds to the logger.
func (l *Logger) WithShard(lo, hi int) *Logger {
	return l.with("shard_lo", lo, "shard_hi", hi)
}

// WithKernel adds the active kernel mode to the logger.
func (l *Logger) WithKernel(mode string) *Logger {
	return l.with("kernel", mode)
}

// LogStep logs a Step. Failures are always logged; successful steps at most
// once per second.
func (l *Logger) LogStep(ctx context.Context, bodies int, dt float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"bodies", bodies,
			"dt", dt,
			"error", err,
		)
		return
	}
	logStep := func() {
		l.DebugContext(ctx, "step completed",
			"bodies", bodies,
			"dt", dt,
		)
	}
	if l.steps == nil {
		logStep()
		return
	}
	l.steps.Do(logStep)
}

// LogSpawn logs an appended body.
func (l *Logger) LogSpawn(ctx context.Context, index int) {
	l.DebugContext(ctx, "body spawned",
		"index", index,
	)
}

// LogStats logs a statistics snapshot.
func (l *Logger) LogStats(ctx context.Context, stats Stats) {
	l.InfoContext(ctx, "system stats",
		"count", stats.Count,
		"mean_speed", stats.MeanSpeed,
		"stddev_speed", stats.StdDevSpeed,
		"max_speed", stats.MaxSpeed,
	)
}
