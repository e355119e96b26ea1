package typed

import (
	"fmt"

	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

// Typed is a value tagged with the unit U.
type Typed[V any, U unit.Unit] struct {
	Value V
}

// New tags v with the unit U.
func New[U unit.Unit, V any](v V) Typed[V, U] {
	return Typed[V, U]{Value: v}
}

// Unit returns the zero-sized unit tag.
func (t Typed[V, U]) Unit() U {
	var u U
	return u
}

// Symbol returns the unit's display symbol.
func (t Typed[V, U]) Symbol() string {
	return unit.SymbolOf[U]()
}

// String formats the value followed by the unit symbol.
func (t Typed[V, U]) String() string {
	if sym := t.Symbol(); sym != "" {
		return fmt.Sprintf("%v %s", t.Value, sym)
	}
	return fmt.Sprint(t.Value)
}

type adder[V any] interface {
	*V
	Add(*V)
}

type subtracter[V any] interface {
	*V
	Sub(*V)
}

type scaler[V any, T vec.Number] interface {
	*V
	MulScalar(T)
	DivScalar(T)
}

// Add computes dst += src. Both sides must carry the same unit.
func Add[V any, P adder[V], U unit.Unit](dst, src *Typed[V, U]) {
	P(&dst.Value).Add(&src.Value)
}

// Sub computes dst -= src. Both sides must carry the same unit.
func Sub[V any, P subtracter[V], U unit.Unit](dst, src *Typed[V, U]) {
	P(&dst.Value).Sub(&src.Value)
}

// Scale multiplies dst by a dimensionless factor.
//
// The element type is inferred from s, so an untyped constant must match the
// column: Scale(&floats, 2.0) compiles while Scale(&floats, 2) does not.
// A typed scalar such as float64(2) works for either.
func Scale[V any, T vec.Number, P scaler[V, T], U unit.Unit](dst *Typed[V, U], s T) {
	P(&dst.Value).MulScalar(s)
}

// Unscale divides dst by a dimensionless factor. Like Scale, the element type
// is inferred from s.
func Unscale[V any, T vec.Number, P scaler[V, T], U unit.Unit](dst *Typed[V, U], s T) {
	P(&dst.Value).DivScalar(s)
}

// AddScalar computes dst += src for tagged scalars.
func AddScalar[T vec.Number, U unit.Unit](dst, src *Typed[T, U]) {
	dst.Value += src.Value
}

// SubScalar computes dst -= src for tagged scalars.
func SubScalar[T vec.Number, U unit.Unit](dst, src *Typed[T, U]) {
	dst.Value -= src.Value
}
