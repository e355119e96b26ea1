package vec

import "github.com/hupe1980/unitvec/internal/kernel"

// Add computes v[i] += w[i].
func (v *Vec1[T]) Add(w *Vec1[T]) {
	n := span("Vec1.Add", v.Len(), w.Len())
	if kernel.Add(v.values[:n], w.values[:n]) {
		return
	}
	ZipToVec1(v, w, addAssign[T])
}

// Sub computes v[i] -= w[i].
func (v *Vec1[T]) Sub(w *Vec1[T]) {
	n := span("Vec1.Sub", v.Len(), w.Len())
	if kernel.Sub(v.values[:n], w.values[:n]) {
		return
	}
	ZipToVec1(v, w, subAssign[T])
}

// Mul computes v[i] *= w[i].
func (v *Vec1[T]) Mul(w *Vec1[T]) {
	n := span("Vec1.Mul", v.Len(), w.Len())
	if kernel.Mul(v.values[:n], w.values[:n]) {
		return
	}
	ZipToVec1(v, w, mulAssign[T])
}

// Div computes v[i] /= w[i].
func (v *Vec1[T]) Div(w *Vec1[T]) {
	n := span("Vec1.Div", v.Len(), w.Len())
	if kernel.Div(v.values[:n], w.values[:n]) {
		return
	}
	ZipToVec1(v, w, divAssign[T])
}

// AddScalar computes v[i] += s.
func (v *Vec1[T]) AddScalar(s T) {
	if kernel.AddConst(v.values, s) {
		return
	}
	ZipToValue(v, s, addAssign[T])
}

// SubScalar computes v[i] -= s.
func (v *Vec1[T]) SubScalar(s T) {
	ZipToValue(v, s, subAssign[T])
}

// MulScalar computes v[i] *= s.
func (v *Vec1[T]) MulScalar(s T) {
	if kernel.Scale(v.values, s) {
		return
	}
	ZipToValue(v, s, mulAssign[T])
}

// DivScalar computes v[i] /= s.
func (v *Vec1[T]) DivScalar(s T) {
	ZipToValue(v, s, divAssign[T])
}

// AddMul computes v[i] += a[i] * b[i] in one pass.
func (v *Vec1[T]) AddMul(m VMul[Vec1[T], Vec1[T]]) {
	n := span("Vec1.AddMul", v.Len(), m.a.Len(), m.b.Len())
	if kernel.AddMul(v.values[:n], m.a.values[:n], m.b.values[:n]) {
		return
	}
	ZipToVec1AndVec1(v, m.a, m.b, addMul[T])
}

// SubMul computes v[i] -= a[i] * b[i] in one pass.
func (v *Vec1[T]) SubMul(m VMul[Vec1[T], Vec1[T]]) {
	n := span("Vec1.SubMul", v.Len(), m.a.Len(), m.b.Len())
	if kernel.SubMul(v.values[:n], m.a.values[:n], m.b.values[:n]) {
		return
	}
	ZipToVec1AndVec1(v, m.a, m.b, subMul[T])
}

// AddMulScalar computes v[i] += a[i] * s in one pass.
func (v *Vec1[T]) AddMulScalar(m VMul[Vec1[T], T]) {
	n := span("Vec1.AddMulScalar", v.Len(), m.a.Len())
	if kernel.AddMulScalar(v.values[:n], m.a.values[:n], *m.b) {
		return
	}
	ZipToVec1AndValue(v, m.a, *m.b, addMul[T])
}

// SubMulScalar computes v[i] -= a[i] * s in one pass.
func (v *Vec1[T]) SubMulScalar(m VMul[Vec1[T], T]) {
	n := span("Vec1.SubMulScalar", v.Len(), m.a.Len())
	if kernel.SubMulScalar(v.values[:n], m.a.values[:n], *m.b) {
		return
	}
	ZipToVec1AndValue(v, m.a, *m.b, subMul[T])
}

// AddDiv computes v[i] += a[i] / b[i] in one pass.
func (v *Vec1[T]) AddDiv(d VDiv[Vec1[T], Vec1[T]]) {
	ZipToVec1AndVec1(v, d.a, d.b, addDiv[T])
}

// SubDiv computes v[i] -= a[i] / b[i] in one pass.
func (v *Vec1[T]) SubDiv(d VDiv[Vec1[T], Vec1[T]]) {
	ZipToVec1AndVec1(v, d.a, d.b, subDiv[T])
}

// AddDivScalar computes v[i] += a[i] / s in one pass.
func (v *Vec1[T]) AddDivScalar(d VDiv[Vec1[T], T]) {
	ZipToVec1AndValue(v, d.a, *d.b, addDiv[T])
}

// SubDivScalar computes v[i] -= a[i] / s in one pass.
func (v *Vec1[T]) SubDivScalar(d VDiv[Vec1[T], T]) {
	ZipToVec1AndValue(v, d.a, *d.b, subDiv[T])
}
