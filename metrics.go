package unitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordStep is called after each Step. bodies is the number of bodies
	// in the system, err is nil if the step completed.
	RecordStep(bodies int, duration time.Duration, err error)

	// RecordSpawn is called after each body is appended.
	RecordSpawn()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSpawn()                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	StepCount        atomic.Int64
	StepErrors       atomic.Int64
	StepTotalNanos   atomic.Int64
	BodiesIntegrated atomic.Int64
	SpawnCount       atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(bodies int, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}
	b.BodiesIntegrated.Add(int64(bodies))
}

// RecordSpawn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSpawn() {
	b.SpawnCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:        b.StepCount.Load(),
		StepErrors:       b.StepErrors.Load(),
		StepAvgNanos:     b.getAvgStepNanos(),
		BodiesIntegrated: b.BodiesIntegrated.Load(),
		SpawnCount:       b.SpawnCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount        int64
	StepErrors       int64
	StepAvgNanos     int64
	BodiesIntegrated int64
	SpawnCount       int64
}
