package typed

import (
	"github.com/hupe1980/unitvec/unit"
	"github.com/hupe1980/unitvec/vec"
)

// VMul is the deferred product of two tagged values. Its unit is decided by
// the accumulating function that consumes it.
type VMul[VA any, A unit.Unit, VB any, B unit.Unit] struct {
	a *Typed[VA, A]
	b *Typed[VB, B]
}

// VDiv is the deferred quotient of two tagged values.
type VDiv[VA any, A unit.Unit, VB any, B unit.Unit] struct {
	a *Typed[VA, A]
	b *Typed[VB, B]
}

// Mul borrows a and b as the deferred product a*b.
func Mul[VA any, A unit.Unit, VB any, B unit.Unit](a *Typed[VA, A], b *Typed[VB, B]) VMul[VA, A, VB, B] {
	return VMul[VA, A, VB, B]{a: a, b: b}
}

// Div borrows a and b as the deferred quotient a/b.
func Div[VA any, A unit.Unit, VB any, B unit.Unit](a *Typed[VA, A], b *Typed[VB, B]) VDiv[VA, A, VB, B] {
	return VDiv[VA, A, VB, B]{a: a, b: b}
}

// AddMul computes dst += a*b for columns, where A ⊗ B = C.
func AddMul[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], m VMul[vec.Vec1[T], A, vec.Vec1[T], B]) {
	dst.Value.AddMul(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// SubMul computes dst -= a*b for columns, where A ⊗ B = C.
func SubMul[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], m VMul[vec.Vec1[T], A, vec.Vec1[T], B]) {
	dst.Value.SubMul(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// AddMulScalar computes dst += a*b for a column a and scalar b.
func AddMulScalar[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], m VMul[vec.Vec1[T], A, T, B]) {
	dst.Value.AddMulScalar(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// SubMulScalar computes dst -= a*b for a column a and scalar b.
func SubMulScalar[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], m VMul[vec.Vec1[T], A, T, B]) {
	dst.Value.SubMulScalar(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// AddMul2 computes dst += a*b for vectors a and a column b.
func AddMul2[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], m VMul[vec.Vec2[T], A, vec.Vec1[T], B]) {
	dst.Value.AddMul(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// SubMul2 computes dst -= a*b for vectors a and a column b.
func SubMul2[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], m VMul[vec.Vec2[T], A, vec.Vec1[T], B]) {
	dst.Value.SubMul(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// AddMul2Scalar computes dst += a*b for vectors a and a scalar b.
func AddMul2Scalar[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], m VMul[vec.Vec2[T], A, T, B]) {
	dst.Value.AddMulScalar(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// SubMul2Scalar computes dst -= a*b for vectors a and a scalar b.
func SubMul2Scalar[T vec.Number, A unit.Times[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], m VMul[vec.Vec2[T], A, T, B]) {
	dst.Value.SubMulScalar(vec.NewVMul(&m.a.Value, &m.b.Value))
}

// AddDiv computes dst += a/b for columns, where A ⊘ B = C.
func AddDiv[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], d VDiv[vec.Vec1[T], A, vec.Vec1[T], B]) {
	dst.Value.AddDiv(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// SubDiv computes dst -= a/b for columns, where A ⊘ B = C.
func SubDiv[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], d VDiv[vec.Vec1[T], A, vec.Vec1[T], B]) {
	dst.Value.SubDiv(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// AddDivScalar computes dst += a/b for a column a and scalar b.
func AddDivScalar[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], d VDiv[vec.Vec1[T], A, T, B]) {
	dst.Value.AddDivScalar(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// SubDivScalar computes dst -= a/b for a column a and scalar b.
func SubDivScalar[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec1[T], C], d VDiv[vec.Vec1[T], A, T, B]) {
	dst.Value.SubDivScalar(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// AddDiv2 computes dst += a/b for vectors a and a column b.
func AddDiv2[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], d VDiv[vec.Vec2[T], A, vec.Vec1[T], B]) {
	dst.Value.AddDiv(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// SubDiv2 computes dst -= a/b for vectors a and a column b.
func SubDiv2[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], d VDiv[vec.Vec2[T], A, vec.Vec1[T], B]) {
	dst.Value.SubDiv(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// AddDiv2Scalar computes dst += a/b for vectors a and a scalar b.
func AddDiv2Scalar[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], d VDiv[vec.Vec2[T], A, T, B]) {
	dst.Value.AddDivScalar(vec.NewVDiv(&d.a.Value, &d.b.Value))
}

// SubDiv2Scalar computes dst -= a/b for vectors a and a scalar b.
func SubDiv2Scalar[T vec.Number, A unit.Per[B, C], B, C unit.Unit](dst *Typed[vec.Vec2[T], C], d VDiv[vec.Vec2[T], A, T, B]) {
	dst.Value.SubDivScalar(vec.NewVDiv(&d.a.Value, &d.b.Value))
}
