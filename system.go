package unitvec

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/unitvec/internal/kernel"
	"github.com/hupe1980/unitvec/internal/mem"
	"github.com/hupe1980/unitvec/typed"
	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

// System is a set of point bodies stored column-wise.
//
// The columns are exported for direct typed arithmetic; they must keep the
// same length. Step and SetAccelerations verify this and return
// *ErrShapeMismatch otherwise.
//
// A System is not safe for concurrent use.
type System[T vec.Float] struct {
	Position     typed.Typed[vec.Vec2[T], unit.Meters]
	Velocity     typed.Typed[vec.Vec2[T], unit.MetersPerSecond]
	Acceleration typed.Typed[vec.Vec2[T], unit.MetersPerSecondSquared]

	opts options
}

// Body is a copy of one body's state.
type Body[T vec.Float] struct {
	X, Y   T // m
	VX, VY T // m/s
	AX, AY T // m/s²
}

// Stats summarizes body speeds.
type Stats struct {
	Count       int
	MeanSpeed   float64
	StdDevSpeed float64
	MaxSpeed    float64
}

// NewSystem creates an empty System.
func NewSystem[T vec.Float](optFns ...Option) (*System[T], error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	s := &System[T]{opts: o}
	s.Position.Value = columns[T](o.capacity)
	s.Velocity.Value = columns[T](o.capacity)
	s.Acceleration.Value = columns[T](o.capacity)

	o.logger.WithKernel(kernel.ActiveMode().String()).Debug("system created",
		"parallelism", o.parallelism,
		"shard_size", o.shardSize,
	)

	return s, nil
}

func columns[T vec.Float](capacity int) vec.Vec2[T] {
	return vec.FromSlices(mem.Aligned[T](capacity), mem.Aligned[T](capacity))
}

// Len returns the number of bodies.
func (s *System[T]) Len() int {
	return s.Position.Value.Len()
}

// Spawn appends a body with zero acceleration and returns its index.
func (s *System[T]) Spawn(px, py, vx, vy T) int {
	i := s.Len()
	s.Position.Value.Insert(px, py, i)
	s.Velocity.Value.Insert(vx, vy, i)
	s.Acceleration.Value.Insert(0, 0, i)

	s.opts.metricsCollector.RecordSpawn()
	s.opts.logger.LogSpawn(context.Background(), i)

	return i
}

// Set overwrites the position and velocity of body i.
// It reports false if i is out of range.
func (s *System[T]) Set(i int, px, py, vx, vy T) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	s.Position.Value.Insert(px, py, i)
	s.Velocity.Value.Insert(vx, vy, i)
	return true
}

// Body returns a copy of body i.
func (s *System[T]) Body(i int) (Body[T], bool) {
	x, y, ok := s.Position.Value.Get(i)
	if !ok {
		return Body[T]{}, false
	}
	vx, vy, _ := s.Velocity.Value.Get(i)
	ax, ay, _ := s.Acceleration.Value.Get(i)
	return Body[T]{X: x, Y: y, VX: vx, VY: vy, AX: ax, AY: ay}, true
}

// Accelerate sets the same acceleration on every body.
func (s *System[T]) Accelerate(ax, ay T) {
	vec.ZipToValue(&s.Acceleration.Value.X, ax, assign[T])
	vec.ZipToValue(&s.Acceleration.Value.Y, ay, assign[T])
}

// SetAccelerations sets a per-body acceleration. Both slices must have one
// entry per body.
func (s *System[T]) SetAccelerations(ax, ay []T) error {
	if err := vec.CheckShape("System.SetAccelerations", s.Len(), len(ax), len(ay)); err != nil {
		return translateError(err)
	}

	src := vec.FromSlices(ax, ay)
	vec.ZipEachToVec2(&s.Acceleration.Value, &src, assign[T])

	return nil
}

func assign[T vec.Float](v *T, a T) { *v = a }

// Step advances every body by dt with semi-implicit Euler integration:
// velocity first, then position from the updated velocity.
//
// With parallelism > 1 the bodies are split into shards integrated
// concurrently. A cancelled context stops scheduling further shards; shards
// already integrated keep their new state.
func (s *System[T]) Step(ctx context.Context, dt typed.Typed[T, unit.Seconds]) error {
	start := time.Now()

	err := s.step(ctx, dt)

	s.opts.metricsCollector.RecordStep(s.Len(), time.Since(start), err)
	s.opts.logger.LogStep(ctx, s.Len(), float64(dt.Value), err)

	return err
}

func (s *System[T]) step(ctx context.Context, dt typed.Typed[T, unit.Seconds]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d := float64(dt.Value); d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTimeStep, dt)
	}

	n, err := s.validate("System.Step")
	if err != nil {
		return err
	}

	if s.opts.parallelism <= 1 || n <= s.opts.shardSize {
		for lo := 0; lo < n; lo += s.opts.shardSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.integrate(lo, min(lo+s.opts.shardSize, n), dt)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.parallelism)

	for lo := 0; lo < n; lo += s.opts.shardSize {
		hi := min(lo+s.opts.shardSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.integrate(lo, hi, dt)
			return nil
		})
	}

	return g.Wait()
}

// validate checks that all six columns share one length and returns it.
func (s *System[T]) validate(op string) (int, error) {
	n := s.Position.Value.X.Len()
	err := vec.CheckShape(op, n,
		s.Position.Value.Y.Len(),
		s.Velocity.Value.X.Len(),
		s.Velocity.Value.Y.Len(),
		s.Acceleration.Value.X.Len(),
		s.Acceleration.Value.Y.Len(),
	)
	return n, translateError(err)
}

// integrate advances bodies [lo, hi).
func (s *System[T]) integrate(lo, hi int, dt typed.Typed[T, unit.Seconds]) {
	pos := typed.New[unit.Meters](s.Position.Value.Window(lo, hi))
	vel := typed.New[unit.MetersPerSecond](s.Velocity.Value.Window(lo, hi))
	acc := typed.New[unit.MetersPerSecondSquared](s.Acceleration.Value.Window(lo, hi))

	typed.AddMul2Scalar(&vel, typed.Mul(&acc, &dt))
	typed.AddMul2Scalar(&pos, typed.Mul(&vel, &dt))
}

// Speeds writes the speed of every body into dst, resizing it.
func (s *System[T]) Speeds(dst *typed.Typed[vec.Vec1[T], unit.MetersPerSecond]) error {
	if _, err := s.validate("System.Speeds"); err != nil {
		return err
	}

	typed.Magnitude(dst, &s.Velocity)

	return nil
}

// Stats summarizes the current body speeds. The standard deviation is the
// population one, so a single body reports 0.
func (s *System[T]) Stats() (Stats, error) {
	n, err := s.validate("System.Stats")
	if err != nil {
		return Stats{}, err
	}

	if n == 0 {
		return Stats{}, ErrEmptySystem
	}

	var speeds typed.Typed[vec.Vec1[T], unit.MetersPerSecond]
	typed.Magnitude(&speeds, &s.Velocity)

	xs := make([]float64, speeds.Value.Len())
	for i, v := range speeds.Value.Values() {
		xs[i] = float64(v)
	}

	mean, std := stat.PopMeanStdDev(xs, nil)

	return Stats{
		Count:       len(xs),
		MeanSpeed:   mean,
		StdDevSpeed: std,
		MaxSpeed:    floats.Max(xs),
	}, nil
}
