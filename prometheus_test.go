package unitvec

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	pc := NewPrometheusCollector(reg, "unitvec")

	s, err := NewSystem[float64](WithMetricsCollector(pc))
	require.NoError(t, err)

	s.Spawn(0, 0, 1, 1)
	s.Spawn(0, 0, 1, 1)
	s.Spawn(0, 0, 1, 1)
	require.NoError(t, s.Step(context.Background(), seconds(1)))
	require.Error(t, s.Step(context.Background(), seconds(-1)))

	assert.Equal(t, 3.0, promtest.ToFloat64(pc.Spawns))
	assert.Equal(t, 3.0, promtest.ToFloat64(pc.Bodies))
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.Steps.WithLabelValues("ok")))
	assert.Equal(t, 1.0, promtest.ToFloat64(pc.Steps.WithLabelValues("error")))

	n, err := promtest.GatherAndCount(reg, "unitvec_step_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusCollector(reg, "dup")

	assert.Panics(t, func() {
		NewPrometheusCollector(reg, "dup")
	})
}
