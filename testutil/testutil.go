package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/unitvec/vec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// NonZero returns a value whose magnitude lies in [minAbs, maxAbs) with a
// random sign.
func (r *RNG) NonZero(minAbs, maxAbs float64) float64 {
	v := r.Float64(minAbs, maxAbs)
	if r.Intn(2) == 0 {
		return -v
	}
	return v
}

// FillUniformRange fills dst with values in [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
}

// Vec1 returns a column of n values in [minVal, maxVal).
func (r *RNG) Vec1(n int, minVal, maxVal float64) vec.Vec1[float64] {
	values := make([]float64, n)
	r.FillUniformRange(values, minVal, maxVal)
	return vec.FromSlice(values)
}

// NonZeroVec1 returns a column of n values with magnitudes in [minAbs, maxAbs).
func (r *RNG) NonZeroVec1(n int, minAbs, maxAbs float64) vec.Vec1[float64] {
	values := make([]float64, n)
	for i := range values {
		values[i] = r.NonZero(minAbs, maxAbs)
	}
	return vec.FromSlice(values)
}

// Vec2 returns a column of n vectors with components in [minVal, maxVal).
func (r *RNG) Vec2(n int, minVal, maxVal float64) vec.Vec2[float64] {
	x := make([]float64, n)
	y := make([]float64, n)
	r.FillUniformRange(x, minVal, maxVal)
	r.FillUniformRange(y, minVal, maxVal)
	return vec.FromSlices(x, y)
}
