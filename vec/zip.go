package vec

// ZipToValue applies f to every element of dst with the broadcast value a.
func ZipToValue[T Number, A any](dst *Vec1[T], a A, f func(v *T, a A)) {
	d := dst.values
	for i := range d {
		f(&d[i], a)
	}
}

// ZipToVec1 applies f to every element of dst paired with the same index of a.
func ZipToVec1[T, A Number](dst *Vec1[T], a *Vec1[A], f func(v *T, a A)) {
	n := span("vec.ZipToVec1", dst.Len(), a.Len())
	d, s := dst.values[:n], a.values[:n]
	for i := range d {
		f(&d[i], s[i])
	}
}

// ZipToVec2 applies f to every element of dst paired with both components of
// the same index of a.
func ZipToVec2[T, A Number](dst *Vec1[T], a *Vec2[A], f func(v *T, x, y A)) {
	n := span("vec.ZipToVec2", dst.Len(), a.size("vec.ZipToVec2"))
	d, x, y := dst.values[:n], a.X.values[:n], a.Y.values[:n]
	for i := range d {
		f(&d[i], x[i], y[i])
	}
}

// ZipToVec1AndVec1 applies f to every element of dst paired with a and b.
func ZipToVec1AndVec1[T, A, B Number](dst *Vec1[T], a *Vec1[A], b *Vec1[B], f func(v *T, a A, b B)) {
	n := span("vec.ZipToVec1AndVec1", dst.Len(), a.Len(), b.Len())
	d, sa, sb := dst.values[:n], a.values[:n], b.values[:n]
	for i := range d {
		f(&d[i], sa[i], sb[i])
	}
}

// ZipToVec1AndValue applies f to every element of dst paired with a and the
// broadcast value b.
func ZipToVec1AndValue[T, A Number, B any](dst *Vec1[T], a *Vec1[A], b B, f func(v *T, a A, b B)) {
	n := span("vec.ZipToVec1AndValue", dst.Len(), a.Len())
	d, sa := dst.values[:n], a.values[:n]
	for i := range d {
		f(&d[i], sa[i], b)
	}
}

// ZipEachToValue applies f to every X and every Y component of dst with the
// broadcast value a.
func ZipEachToValue[T Number, A any](dst *Vec2[T], a A, f func(v *T, a A)) {
	dst.size("vec.ZipEachToValue")
	ZipToValue(&dst.X, a, f)
	ZipToValue(&dst.Y, a, f)
}

// ZipEachToVec1 applies f to both components of dst at each index, paired with
// the same index of a.
func ZipEachToVec1[T, A Number](dst *Vec2[T], a *Vec1[A], f func(v *T, a A)) {
	dst.size("vec.ZipEachToVec1")
	ZipToVec1(&dst.X, a, f)
	ZipToVec1(&dst.Y, a, f)
}

// ZipEachToVec2 applies f to X paired with a.X and to Y paired with a.Y.
func ZipEachToVec2[T, A Number](dst *Vec2[T], a *Vec2[A], f func(v *T, a A)) {
	dst.size("vec.ZipEachToVec2")
	a.size("vec.ZipEachToVec2")
	ZipToVec1(&dst.X, &a.X, f)
	ZipToVec1(&dst.Y, &a.Y, f)
}

// ZipEachToVec2AndValue applies f componentwise against a with the broadcast
// value b.
func ZipEachToVec2AndValue[T, A Number, B any](dst *Vec2[T], a *Vec2[A], b B, f func(v *T, a A, b B)) {
	dst.size("vec.ZipEachToVec2AndValue")
	a.size("vec.ZipEachToVec2AndValue")
	ZipToVec1AndValue(&dst.X, &a.X, b, f)
	ZipToVec1AndValue(&dst.Y, &a.Y, b, f)
}

// ZipEachToVec2AndVec1 applies f componentwise against a, with b shared by
// both components of the same index.
func ZipEachToVec2AndVec1[T, A, B Number](dst *Vec2[T], a *Vec2[A], b *Vec1[B], f func(v *T, a A, b B)) {
	dst.size("vec.ZipEachToVec2AndVec1")
	a.size("vec.ZipEachToVec2AndVec1")
	ZipToVec1AndVec1(&dst.X, &a.X, b, f)
	ZipToVec1AndVec1(&dst.Y, &a.Y, b, f)
}

// ZipBothToValue calls f once per index with both components of dst.
func ZipBothToValue[T Number, A any](dst *Vec2[T], a A, f func(x, y *T, a A)) {
	n := dst.size("vec.ZipBothToValue")
	x, y := dst.X.values[:n], dst.Y.values[:n]
	for i := range x {
		f(&x[i], &y[i], a)
	}
}

// ZipBothToVec1 calls f once per index with both components of dst and the
// same index of a.
func ZipBothToVec1[T, A Number](dst *Vec2[T], a *Vec1[A], f func(x, y *T, a A)) {
	n := span("vec.ZipBothToVec1", dst.size("vec.ZipBothToVec1"), a.Len())
	x, y, s := dst.X.values[:n], dst.Y.values[:n], a.values[:n]
	for i := range x {
		f(&x[i], &y[i], s[i])
	}
}

// ZipBothToVec2 calls f once per index with both components of dst and of a.
func ZipBothToVec2[T, A Number](dst *Vec2[T], a *Vec2[A], f func(x, y *T, ax, ay A)) {
	n := span("vec.ZipBothToVec2", dst.size("vec.ZipBothToVec2"), a.size("vec.ZipBothToVec2"))
	x, y, ax, ay := dst.X.values[:n], dst.Y.values[:n], a.X.values[:n], a.Y.values[:n]
	for i := range x {
		f(&x[i], &y[i], ax[i], ay[i])
	}
}

// ZipBothToVec2AndValue is ZipBothToVec2 with an extra broadcast value b.
func ZipBothToVec2AndValue[T, A Number, B any](dst *Vec2[T], a *Vec2[A], b B, f func(x, y *T, ax, ay A, b B)) {
	n := span("vec.ZipBothToVec2AndValue", dst.size("vec.ZipBothToVec2AndValue"), a.size("vec.ZipBothToVec2AndValue"))
	x, y, ax, ay := dst.X.values[:n], dst.Y.values[:n], a.X.values[:n], a.Y.values[:n]
	for i := range x {
		f(&x[i], &y[i], ax[i], ay[i], b)
	}
}

// ZipBothToVec2AndVec1 is ZipBothToVec2 with an extra column b.
func ZipBothToVec2AndVec1[T, A, B Number](dst *Vec2[T], a *Vec2[A], b *Vec1[B], f func(x, y *T, ax, ay A, b B)) {
	n := span("vec.ZipBothToVec2AndVec1", dst.size("vec.ZipBothToVec2AndVec1"), a.size("vec.ZipBothToVec2AndVec1"), b.Len())
	x, y, ax, ay, sb := dst.X.values[:n], dst.Y.values[:n], a.X.values[:n], a.Y.values[:n], b.values[:n]
	for i := range x {
		f(&x[i], &y[i], ax[i], ay[i], sb[i])
	}
}
