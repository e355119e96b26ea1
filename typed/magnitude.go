package typed

import (
	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

// Magnitude writes the per-index length of src into dst, keeping the unit.
func Magnitude[T vec.Float, U unit.Unit](dst *Typed[vec.Vec1[T], U], src *Typed[vec.Vec2[T], U]) {
	vec.Magnitude(&dst.Value, &src.Value)
}

// MagnitudeSquared writes the per-index squared length of src into dst,
// whose unit is U ⊗ U.
func MagnitudeSquared[T vec.Float, U unit.Times[U, C], C unit.Unit](dst *Typed[vec.Vec1[T], C], src *Typed[vec.Vec2[T], U]) {
	vec.MagnitudeSquared(&dst.Value, &src.Value)
}
