package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	src := FromSlices([]float64{3, 0, -5}, []float64{4, 1, 12})

	sq := FromSlice([]float64{99})
	MagnitudeSquared(&sq, &src)
	assert.Equal(t, []float64{25, 1, 169}, sq.Values())

	m := New[float64]()
	Magnitude(&m, &src)
	assert.Equal(t, []float64{5, 1, 13}, m.Values())
}

func TestMagnitudeShrinksTarget(t *testing.T) {
	src := FromSlices([]float32{3}, []float32{4})
	m := FromSlice([]float32{1, 2, 3})

	Magnitude(&m, &src)
	assert.Equal(t, []float32{5}, m.Values())
}

func TestDot(t *testing.T) {
	a := FromSlices([]int{1, 2}, []int{3, 4})
	b := FromSlices([]int{5, 6}, []int{7, 8})

	d := New[int]()
	Dot(&d, &a, &b)
	assert.Equal(t, []int{26, 44}, d.Values())
}

func TestNormalize(t *testing.T) {
	v := FromSlices([]float64{3, 0, 0}, []float64{4, 0, -2})
	Normalize(&v)

	assert.InDeltaSlice(t, []float64{0.6, 0, 0}, v.X.Values(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.8, 0, -1}, v.Y.Values(), 1e-12)

	m := New[float64]()
	Magnitude(&m, &v)
	assert.InDelta(t, 1.0, m.Values()[0], 1e-12)
	assert.False(t, math.IsNaN(v.X.Values()[1]))
}
