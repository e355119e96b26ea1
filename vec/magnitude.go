package vec

import "math"

// MagnitudeSquared resizes dst to src.Len() and writes x²+y² per index.
func MagnitudeSquared[T Float](dst *Vec1[T], src *Vec2[T]) {
	dst.resize(src.Len())
	ZipToVec2(dst, src, magnitudeSquared[T])
}

// Magnitude resizes dst to src.Len() and writes √(x²+y²) per index.
func Magnitude[T Float](dst *Vec1[T], src *Vec2[T]) {
	dst.resize(src.Len())
	ZipToVec2(dst, src, magnitude[T])
}

// Dot resizes dst to a.Len() and writes a[i]·b[i] per index.
func Dot[T Number](dst *Vec1[T], a, b *Vec2[T]) {
	dst.resize(a.Len())
	ZipToVec1AndVec1(dst, &a.X, &b.X, func(v *T, ax, bx T) { *v = ax * bx })
	ZipToVec1AndVec1(dst, &a.Y, &b.Y, addMul[T])
}

// Normalize scales every non-zero vector of v to unit length.
// Zero vectors are left unchanged.
func Normalize[T Float](v *Vec2[T]) {
	ZipBothToValue(v, struct{}{}, normalize[T])
}

func magnitudeSquared[T Float](v *T, x, y T) {
	*v = x*x + y*y
}

func magnitude[T Float](v *T, x, y T) {
	*v = T(math.Sqrt(float64(x*x + y*y)))
}

func normalize[T Float](x, y *T, _ struct{}) {
	fx, fy := float64(*x), float64(*y)
	m := math.Sqrt(fx*fx + fy*fy)
	if m == 0 {
		return
	}
	*x = T(fx / m)
	*y = T(fy / m)
}
