package unitvec

import "log/slog"

const (
	// DefaultShardSize is the number of bodies integrated per task in Step.
	DefaultShardSize = 4096
)

type options struct {
	parallelism      int
	shardSize        int
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a System.
type Option func(*options)

// WithParallelism sets how many shards Step integrates concurrently.
// Values <= 1 integrate on the calling goroutine.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithShardSize sets the number of bodies per shard. Must be positive.
func WithShardSize(n int) Option {
	return func(o *options) {
		o.shardSize = n
	}
}

// WithCapacity preallocates room for n bodies.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unitvec.BasicMetricsCollector{}
//	sys, _ := unitvec.NewSystem[float64](unitvec.WithMetricsCollector(metrics))
//	// ... step sys ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		parallelism: 1,
		shardSize:   DefaultShardSize,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	if o.shardSize <= 0 {
		return o, &ErrInvalidOption{Name: "shard size", Value: o.shardSize}
	}
	if o.capacity < 0 {
		return o, &ErrInvalidOption{Name: "capacity", Value: o.capacity}
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}

	return o, nil
}
