package unitvec

import "github.com/hupe1980/unitvec/vec"

// Kinematics creates a System builder for element type T.
//
// The builder is immutable: each method returns a new builder with the
// updated configuration, so a partially configured builder can be shared.
//
// Example:
//
//	sys, err := unitvec.Kinematics[float64]().
//	    Capacity(10_000).
//	    Parallelism(4).
//	    Build()
func Kinematics[T vec.Float]() SystemBuilder[T] {
	return SystemBuilder[T]{
		parallelism: 1,
		shardSize:   DefaultShardSize,
	}
}

// SystemBuilder is an immutable fluent builder for System.
type SystemBuilder[T vec.Float] struct {
	parallelism int
	shardSize   int
	capacity    int
	logger      *Logger
	metrics     MetricsCollector
}

// Parallelism sets how many shards Step integrates concurrently.
// Default: 1.
func (b SystemBuilder[T]) Parallelism(n int) SystemBuilder[T] {
	b.parallelism = n
	return b
}

// ShardSize sets the number of bodies per shard.
// Default: DefaultShardSize.
func (b SystemBuilder[T]) ShardSize(n int) SystemBuilder[T] {
	b.shardSize = n
	return b
}

// Capacity preallocates room for n bodies.
func (b SystemBuilder[T]) Capacity(n int) SystemBuilder[T] {
	b.capacity = n
	return b
}

// Logger sets the logger.
func (b SystemBuilder[T]) Logger(l *Logger) SystemBuilder[T] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b SystemBuilder[T]) Metrics(mc MetricsCollector) SystemBuilder[T] {
	b.metrics = mc
	return b
}

// Build creates the System.
func (b SystemBuilder[T]) Build() (*System[T], error) {
	return NewSystem[T](
		WithParallelism(b.parallelism),
		WithShardSize(b.shardSize),
		WithCapacity(b.capacity),
		WithLogger(b.logger),
		WithMetricsCollector(b.metrics),
	)
}

// MustBuild is like Build but panics on error.
func (b SystemBuilder[T]) MustBuild() *System[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
