package unitvec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector
	assert.Zero(t, m.GetStats().StepAvgNanos)

	m.RecordStep(10, 100*time.Nanosecond, nil)
	m.RecordStep(10, 300*time.Nanosecond, errors.New("failed"))
	m.RecordSpawn()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, int64(1), stats.StepErrors)
	assert.Equal(t, int64(200), stats.StepAvgNanos)
	assert.Equal(t, int64(10), stats.BodiesIntegrated)
	assert.Equal(t, int64(1), stats.SpawnCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordStep(1, time.Second, nil)
	mc.RecordSpawn()
}
