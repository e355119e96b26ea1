package vec

import "github.com/hupe1980/unitvec/internal/kernel"

// Add computes v[i] += w[i] componentwise.
func (v *Vec2[T]) Add(w *Vec2[T]) {
	n := span("Vec2.Add", v.size("Vec2.Add"), w.size("Vec2.Add"))
	if kernel.Add(v.X.values[:n], w.X.values[:n]) {
		kernel.Add(v.Y.values[:n], w.Y.values[:n])
		return
	}
	ZipEachToVec2(v, w, addAssign[T])
}

// Sub computes v[i] -= w[i] componentwise.
func (v *Vec2[T]) Sub(w *Vec2[T]) {
	n := span("Vec2.Sub", v.size("Vec2.Sub"), w.size("Vec2.Sub"))
	if kernel.Sub(v.X.values[:n], w.X.values[:n]) {
		kernel.Sub(v.Y.values[:n], w.Y.values[:n])
		return
	}
	ZipEachToVec2(v, w, subAssign[T])
}

// Mul computes v[i] *= w[i] componentwise.
func (v *Vec2[T]) Mul(w *Vec2[T]) {
	n := span("Vec2.Mul", v.size("Vec2.Mul"), w.size("Vec2.Mul"))
	if kernel.Mul(v.X.values[:n], w.X.values[:n]) {
		kernel.Mul(v.Y.values[:n], w.Y.values[:n])
		return
	}
	ZipEachToVec2(v, w, mulAssign[T])
}

// Div computes v[i] /= w[i] componentwise.
func (v *Vec2[T]) Div(w *Vec2[T]) {
	n := span("Vec2.Div", v.size("Vec2.Div"), w.size("Vec2.Div"))
	if kernel.Div(v.X.values[:n], w.X.values[:n]) {
		kernel.Div(v.Y.values[:n], w.Y.values[:n])
		return
	}
	ZipEachToVec2(v, w, divAssign[T])
}

// MulVec1 scales both components of v[i] by w[i].
func (v *Vec2[T]) MulVec1(w *Vec1[T]) {
	n := span("Vec2.MulVec1", v.size("Vec2.MulVec1"), w.Len())
	if kernel.Mul(v.X.values[:n], w.values[:n]) {
		kernel.Mul(v.Y.values[:n], w.values[:n])
		return
	}
	ZipEachToVec1(v, w, mulAssign[T])
}

// DivVec1 divides both components of v[i] by w[i].
func (v *Vec2[T]) DivVec1(w *Vec1[T]) {
	n := span("Vec2.DivVec1", v.size("Vec2.DivVec1"), w.Len())
	if kernel.Div(v.X.values[:n], w.values[:n]) {
		kernel.Div(v.Y.values[:n], w.values[:n])
		return
	}
	ZipEachToVec1(v, w, divAssign[T])
}

// AddScalar computes v[i] += (s, s).
func (v *Vec2[T]) AddScalar(s T) {
	ZipEachToValue(v, s, addAssign[T])
}

// SubScalar computes v[i] -= (s, s).
func (v *Vec2[T]) SubScalar(s T) {
	ZipEachToValue(v, s, subAssign[T])
}

// MulScalar computes v[i] *= s.
func (v *Vec2[T]) MulScalar(s T) {
	v.size("Vec2.MulScalar")
	if kernel.Scale(v.X.values, s) {
		kernel.Scale(v.Y.values, s)
		return
	}
	ZipEachToValue(v, s, mulAssign[T])
}

// DivScalar computes v[i] /= s.
func (v *Vec2[T]) DivScalar(s T) {
	ZipEachToValue(v, s, divAssign[T])
}

// AddMul computes v[i] += a[i] * b[i], b[i] scaling both components.
func (v *Vec2[T]) AddMul(m VMul[Vec2[T], Vec1[T]]) {
	n := span("Vec2.AddMul", v.size("Vec2.AddMul"), m.a.size("Vec2.AddMul"), m.b.Len())
	if kernel.AddMul(v.X.values[:n], m.a.X.values[:n], m.b.values[:n]) {
		kernel.AddMul(v.Y.values[:n], m.a.Y.values[:n], m.b.values[:n])
		return
	}
	ZipEachToVec2AndVec1(v, m.a, m.b, addMul[T])
}

// SubMul computes v[i] -= a[i] * b[i], b[i] scaling both components.
func (v *Vec2[T]) SubMul(m VMul[Vec2[T], Vec1[T]]) {
	n := span("Vec2.SubMul", v.size("Vec2.SubMul"), m.a.size("Vec2.SubMul"), m.b.Len())
	if kernel.SubMul(v.X.values[:n], m.a.X.values[:n], m.b.values[:n]) {
		kernel.SubMul(v.Y.values[:n], m.a.Y.values[:n], m.b.values[:n])
		return
	}
	ZipEachToVec2AndVec1(v, m.a, m.b, subMul[T])
}

// AddMulScalar computes v[i] += a[i] * s.
func (v *Vec2[T]) AddMulScalar(m VMul[Vec2[T], T]) {
	n := span("Vec2.AddMulScalar", v.size("Vec2.AddMulScalar"), m.a.size("Vec2.AddMulScalar"))
	if kernel.AddMulScalar(v.X.values[:n], m.a.X.values[:n], *m.b) {
		kernel.AddMulScalar(v.Y.values[:n], m.a.Y.values[:n], *m.b)
		return
	}
	ZipEachToVec2AndValue(v, m.a, *m.b, addMul[T])
}

// SubMulScalar computes v[i] -= a[i] * s.
func (v *Vec2[T]) SubMulScalar(m VMul[Vec2[T], T]) {
	n := span("Vec2.SubMulScalar", v.size("Vec2.SubMulScalar"), m.a.size("Vec2.SubMulScalar"))
	if kernel.SubMulScalar(v.X.values[:n], m.a.X.values[:n], *m.b) {
		kernel.SubMulScalar(v.Y.values[:n], m.a.Y.values[:n], *m.b)
		return
	}
	ZipEachToVec2AndValue(v, m.a, *m.b, subMul[T])
}

// AddDiv computes v[i] += a[i] / b[i], b[i] dividing both components.
func (v *Vec2[T]) AddDiv(d VDiv[Vec2[T], Vec1[T]]) {
	ZipEachToVec2AndVec1(v, d.a, d.b, addDiv[T])
}

// SubDiv computes v[i] -= a[i] / b[i], b[i] dividing both components.
func (v *Vec2[T]) SubDiv(d VDiv[Vec2[T], Vec1[T]]) {
	ZipEachToVec2AndVec1(v, d.a, d.b, subDiv[T])
}

// AddDivScalar computes v[i] += a[i] / s.
func (v *Vec2[T]) AddDivScalar(d VDiv[Vec2[T], T]) {
	ZipEachToVec2AndValue(v, d.a, *d.b, addDiv[T])
}

// SubDivScalar computes v[i] -= a[i] / s.
func (v *Vec2[T]) SubDivScalar(d VDiv[Vec2[T], T]) {
	ZipEachToVec2AndValue(v, d.a, *d.b, subDiv[T])
}
