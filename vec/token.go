package vec

// VMul is a deferred product a*b. It borrows both operands and is consumed by
// exactly one accumulating method (AddMul, SubMul, AddMulScalar, ...) in the
// statement that builds it. Do not keep a VMul beyond that statement.
type VMul[A, B any] struct {
	a *A
	b *B
}

// NewVMul borrows a and b as the deferred product a*b.
func NewVMul[A, B any](a *A, b *B) VMul[A, B] {
	return VMul[A, B]{a: a, b: b}
}

// A returns the left factor.
func (m VMul[A, B]) A() *A { return m.a }

// B returns the right factor.
func (m VMul[A, B]) B() *B { return m.b }

// VDiv is a deferred quotient a/b with the same borrowing rules as VMul.
type VDiv[A, B any] struct {
	a *A
	b *B
}

// NewVDiv borrows a and b as the deferred quotient a/b.
func NewVDiv[A, B any](a *A, b *B) VDiv[A, B] {
	return VDiv[A, B]{a: a, b: b}
}

// A returns the dividend.
func (d VDiv[A, B]) A() *A { return d.a }

// B returns the divisor.
func (d VDiv[A, B]) B() *B { return d.b }

// Times borrows v and w as the deferred product v*w.
func (v *Vec1[T]) Times(w *Vec1[T]) VMul[Vec1[T], Vec1[T]] {
	return NewVMul(v, w)
}

// Over borrows v and w as the deferred quotient v/w.
func (v *Vec1[T]) Over(w *Vec1[T]) VDiv[Vec1[T], Vec1[T]] {
	return NewVDiv(v, w)
}

// ScaledBy borrows v and s as the deferred product v*s.
func (v *Vec1[T]) ScaledBy(s *T) VMul[Vec1[T], T] {
	return NewVMul(v, s)
}

// DividedBy borrows v and s as the deferred quotient v/s.
func (v *Vec1[T]) DividedBy(s *T) VDiv[Vec1[T], T] {
	return NewVDiv(v, s)
}

// Times borrows v and w as the deferred product v*w, w scaling both
// components of the same index.
func (v *Vec2[T]) Times(w *Vec1[T]) VMul[Vec2[T], Vec1[T]] {
	return NewVMul(v, w)
}

// Over borrows v and w as the deferred quotient v/w.
func (v *Vec2[T]) Over(w *Vec1[T]) VDiv[Vec2[T], Vec1[T]] {
	return NewVDiv(v, w)
}

// ScaledBy borrows v and s as the deferred product v*s.
func (v *Vec2[T]) ScaledBy(s *T) VMul[Vec2[T], T] {
	return NewVMul(v, s)
}

// DividedBy borrows v and s as the deferred quotient v/s.
func (v *Vec2[T]) DividedBy(s *T) VDiv[Vec2[T], T] {
	return NewVDiv(v, s)
}
