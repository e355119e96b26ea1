package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// f64 reports the float64 view of dst when T is exactly float64 and a
// specialized mode is active.
func f64[T any](dst []T) ([]float64, bool) {
	if activeMode == Generic {
		return nil, false
	}
	d, ok := any(dst).([]float64)
	return d, ok
}

// Add computes dst[i] += s[i].
func Add[T any](dst, s []T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.Add(d, any(s).([]float64))
	return true
}

// Sub computes dst[i] -= s[i].
func Sub[T any](dst, s []T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.Sub(d, any(s).([]float64))
	return true
}

// Mul computes dst[i] *= s[i].
func Mul[T any](dst, s []T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.Mul(d, any(s).([]float64))
	return true
}

// Div computes dst[i] /= s[i].
func Div[T any](dst, s []T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.Div(d, any(s).([]float64))
	return true
}

// AddConst computes dst[i] += c.
func AddConst[T any](dst []T, c T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.AddConst(any(c).(float64), d)
	return true
}

// Scale computes dst[i] *= c.
func Scale[T any](dst []T, c T) bool {
	d, ok := f64(dst)
	if !ok {
		return false
	}
	floats.Scale(any(c).(float64), d)
	return true
}

// AddMul computes dst[i] += a[i] * b[i] with a single rounding.
// Only handled in FMA mode.
func AddMul[T any](dst, a, b []T) bool {
	if activeMode != FMA {
		return false
	}
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	addMulFMA(d, any(a).([]float64), any(b).([]float64))
	return true
}

// SubMul computes dst[i] -= a[i] * b[i] with a single rounding.
// Only handled in FMA mode.
func SubMul[T any](dst, a, b []T) bool {
	if activeMode != FMA {
		return false
	}
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	subMulFMA(d, any(a).([]float64), any(b).([]float64))
	return true
}

func addMulFMA(dst, a, b []float64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = math.FMA(a[i], b[i], dst[i])
	}
}

// AddMulScalar computes dst[i] += a[i] * s with a single rounding.
// Only handled in FMA mode.
func AddMulScalar[T any](dst, a []T, s T) bool {
	if activeMode != FMA {
		return false
	}
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	addMulScalarFMA(d, any(a).([]float64), any(s).(float64))
	return true
}

// SubMulScalar computes dst[i] -= a[i] * s with a single rounding.
// Only handled in FMA mode.
func SubMulScalar[T any](dst, a []T, s T) bool {
	if activeMode != FMA {
		return false
	}
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	addMulScalarFMA(d, any(a).([]float64), -any(s).(float64))
	return true
}

func subMulFMA(dst, a, b []float64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = math.FMA(-a[i], b[i], dst[i])
	}
}

func addMulScalarFMA(dst, a []float64, s float64) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = math.FMA(a[i], s, dst[i])
	}
}
