//go:build !unitvec_nocheck

package typed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

func TestShapeMismatchPanics(t *testing.T) {
	speed := New[unit.MetersPerSecond](vec.FromSlice([]float64{1, 2}))
	dt := New[unit.Seconds](vec.FromSlice([]float64{1}))
	pos := New[unit.Meters](vec.FromSlice([]float64{0, 0}))

	assert.PanicsWithError(t, "Vec1.AddMul: length mismatch: expected 2, got 1", func() {
		AddMul(&pos, Mul(&speed, &dt))
	})
}
