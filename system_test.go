package unitvec

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitvec/testutil"
	"github.com/hupe1980/unitvec/typed"
	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

func seconds(v float64) typed.Typed[float64, unit.Seconds] {
	return typed.New[unit.Seconds](v)
}

func TestSpawnSetBody(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	assert.Equal(t, 0, s.Spawn(1, 2, 3, 4))
	assert.Equal(t, 1, s.Spawn(5, 6, 7, 8))
	assert.Equal(t, 2, s.Len())

	b, ok := s.Body(1)
	require.True(t, ok)
	assert.Equal(t, Body[float64]{X: 5, Y: 6, VX: 7, VY: 8}, b)

	assert.True(t, s.Set(0, -1, -2, -3, -4))
	b, _ = s.Body(0)
	assert.Equal(t, Body[float64]{X: -1, Y: -2, VX: -3, VY: -4}, b)

	assert.False(t, s.Set(2, 0, 0, 0, 0))
	assert.False(t, s.Set(-1, 0, 0, 0, 0))
	assert.Equal(t, 2, s.Len())

	_, ok = s.Body(2)
	assert.False(t, ok)
}

func TestStepConstantVelocity(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)

	for i, v := range []float64{2, 3, 5} {
		s.Spawn(float64(i), 0, v, 0)
	}

	require.NoError(t, s.Step(context.Background(), seconds(2)))
	assert.Equal(t, []float64{4, 7, 12}, s.Position.Value.X.Values())
	assert.Equal(t, []float64{0, 0, 0}, s.Position.Value.Y.Values())
}

func TestStepSemiImplicitEuler(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)

	s.Spawn(0, 0, 1, 0)
	s.Accelerate(0, -10)

	require.NoError(t, s.Step(context.Background(), seconds(0.5)))

	b, _ := s.Body(0)
	assert.Equal(t, Body[float64]{X: 0.5, Y: -2.5, VX: 1, VY: -5, AX: 0, AY: -10}, b)
}

func TestStepFloat32(t *testing.T) {
	s, err := NewSystem[float32]()
	require.NoError(t, err)

	s.Spawn(0, 0, 0, 0)
	s.Accelerate(2, 4)

	require.NoError(t, s.Step(context.Background(), typed.New[unit.Seconds](float32(1))))

	b, _ := s.Body(0)
	assert.Equal(t, float32(2), b.X)
	assert.Equal(t, float32(4), b.Y)
}

func TestStepParallelMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(7)
	const n = 1000

	pos := rng.Vec2(n, -100, 100)
	vel := rng.Vec2(n, -10, 10)
	acc := rng.Vec2(n, -1, 1)

	build := func(parallelism int) *System[float64] {
		s := Kinematics[float64]().
			Parallelism(parallelism).
			ShardSize(64).
			Capacity(n).
			MustBuild()
		for i := range n {
			px, py, _ := pos.Get(i)
			vx, vy, _ := vel.Get(i)
			s.Spawn(px, py, vx, vy)
		}
		require.NoError(t, s.SetAccelerations(acc.X.Values(), acc.Y.Values()))
		return s
	}

	seq := build(1)
	par := build(4)

	for range 10 {
		require.NoError(t, seq.Step(context.Background(), seconds(0.01)))
		require.NoError(t, par.Step(context.Background(), seconds(0.01)))
	}

	assert.InDeltaSlice(t, seq.Position.Value.X.Values(), par.Position.Value.X.Values(), 1e-12)
	assert.InDeltaSlice(t, seq.Position.Value.Y.Values(), par.Position.Value.Y.Values(), 1e-12)
	assert.InDeltaSlice(t, seq.Velocity.Value.X.Values(), par.Velocity.Value.X.Values(), 1e-12)
	assert.InDeltaSlice(t, seq.Velocity.Value.Y.Values(), par.Velocity.Value.Y.Values(), 1e-12)
}

func TestStepInvalidTimeStep(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	s.Spawn(1, 1, 1, 1)

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		err := s.Step(context.Background(), seconds(dt))
		assert.ErrorIs(t, err, ErrInvalidTimeStep)
	}

	b, _ := s.Body(0)
	assert.Equal(t, 1.0, b.X)
}

func TestStepCancelled(t *testing.T) {
	s := Kinematics[float64]().Parallelism(2).ShardSize(1).MustBuild()
	s.Spawn(0, 0, 1, 1)
	s.Spawn(0, 0, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Step(ctx, seconds(1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []float64{0, 0}, s.Position.Value.X.Values())
}

func TestStepShapeMismatch(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	s.Spawn(0, 0, 0, 0)

	s.Velocity.Value.X.Insert(1, 1)

	err = s.Step(context.Background(), seconds(1))
	require.Error(t, err)

	var sm *ErrShapeMismatch
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, "System.Step", sm.Op)
	assert.Equal(t, 1, sm.Expected)
	assert.Equal(t, 2, sm.Actual)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestStepEmpty(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	assert.NoError(t, s.Step(context.Background(), seconds(1)))
}

func TestSetAccelerations(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	s.Spawn(0, 0, 0, 0)
	s.Spawn(0, 0, 0, 0)

	require.NoError(t, s.SetAccelerations([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, []float64{1, 2}, s.Acceleration.Value.X.Values())
	assert.Equal(t, []float64{3, 4}, s.Acceleration.Value.Y.Values())

	err = s.SetAccelerations([]float64{1}, []float64{3, 4})
	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "System.SetAccelerations", sm.Op)
	assert.Equal(t, []float64{1, 2}, s.Acceleration.Value.X.Values())
}

func TestSpeedsAndStats(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)

	_, err = s.Stats()
	require.ErrorIs(t, err, ErrEmptySystem)

	s.Spawn(0, 0, 3, 4)
	s.Spawn(0, 0, 0, 0)

	var speeds typed.Typed[vec.Vec1[float64], unit.MetersPerSecond]
	require.NoError(t, s.Speeds(&speeds))
	assert.InDeltaSlice(t, []float64{5, 0}, speeds.Value.Values(), 1e-12)
	assert.Equal(t, "m/s", speeds.Symbol())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 2.5, stats.MeanSpeed, 1e-12)
	assert.InDelta(t, 2.5, stats.StdDevSpeed, 1e-12)
	assert.InDelta(t, 5, stats.MaxSpeed, 1e-12)
}

func TestStatsShapeMismatch(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	s.Spawn(0, 0, 3, 4)

	s.Velocity.Value.X.Insert(1, 1)

	var speeds typed.Typed[vec.Vec1[float64], unit.MetersPerSecond]
	err = s.Speeds(&speeds)
	var sm *ErrShapeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "System.Speeds", sm.Op)
	assert.Zero(t, speeds.Value.Len())

	require.NotPanics(t, func() { _, err = s.Stats() })
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, "System.Stats", sm.Op)
	assert.Equal(t, 1, sm.Expected)
	assert.Equal(t, 2, sm.Actual)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestStatsSingleBody(t *testing.T) {
	s, err := NewSystem[float64]()
	require.NoError(t, err)
	s.Spawn(0, 0, 0, 2)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 2, stats.MeanSpeed, 1e-12)
	assert.Zero(t, stats.StdDevSpeed)
}

func TestStepMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s, err := NewSystem[float64](WithMetricsCollector(metrics))
	require.NoError(t, err)

	s.Spawn(0, 0, 0, 0)
	s.Spawn(0, 0, 0, 0)
	require.NoError(t, s.Step(context.Background(), seconds(1)))
	require.Error(t, s.Step(context.Background(), seconds(-1)))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.SpawnCount)
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, int64(1), stats.StepErrors)
	assert.Equal(t, int64(2), stats.BodiesIntegrated)
}

func BenchmarkStep(b *testing.B) {
	rng := testutil.NewRNG(1)
	const n = 100_000

	s := Kinematics[float64]().Capacity(n).Parallelism(4).MustBuild()
	for range n {
		s.Spawn(rng.Float64(-1, 1), rng.Float64(-1, 1), rng.Float64(-1, 1), rng.Float64(-1, 1))
	}
	s.Accelerate(0, -9.81)
	dt := seconds(0.001)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Step(ctx, dt); err != nil {
			b.Fatal(err)
		}
	}
}
