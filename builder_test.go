package unitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitvec/internal/mem"
)

func TestBuilderImmutable(t *testing.T) {
	base := Kinematics[float64]()
	parallel := base.Parallelism(8).ShardSize(128)

	assert.Equal(t, 1, base.parallelism)
	assert.Equal(t, DefaultShardSize, base.shardSize)
	assert.Equal(t, 8, parallel.parallelism)
	assert.Equal(t, 128, parallel.shardSize)
}

func TestBuilderBuild(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s, err := Kinematics[float64]().
		Parallelism(0).
		Capacity(16).
		Logger(NoopLogger()).
		Metrics(metrics).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 1, s.opts.parallelism)
	assert.Equal(t, 16, cap(s.Position.Value.X.Values()))
	assert.True(t, mem.IsAligned(s.Velocity.Value.Y.Values()))
	assert.Same(t, metrics, s.opts.metricsCollector)
	assert.Equal(t, 0, s.Len())
}

func TestBuilderMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		Kinematics[float64]().ShardSize(-1).MustBuild()
	})
}

func TestApplyOptionsDefaults(t *testing.T) {
	o, err := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})
	require.NoError(t, err)

	assert.Equal(t, 1, o.parallelism)
	assert.Equal(t, DefaultShardSize, o.shardSize)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
}
