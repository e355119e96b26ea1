package vec

import (
	"fmt"
	"slices"
)

// Vec1 is a column of scalars.
//
// The zero value is an empty column ready to use.
type Vec1[T Number] struct {
	values []T
}

// New returns an empty column.
func New[T Number]() Vec1[T] {
	return Vec1[T]{}
}

// FromSlice wraps values without copying. The column owns values afterwards.
func FromSlice[T Number](values []T) Vec1[T] {
	return Vec1[T]{values: values}
}

// WithLen returns a column of n zero values.
func WithLen[T Number](n int) Vec1[T] {
	return Vec1[T]{values: make([]T, n)}
}

// Len returns the number of elements.
func (v *Vec1[T]) Len() int {
	return len(v.values)
}

// IsEmpty reports whether the column has no elements.
func (v *Vec1[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Values returns the backing slice. Writes through it are visible in v.
func (v *Vec1[T]) Values() []T {
	return v.values
}

// Clone returns a deep copy.
func (v *Vec1[T]) Clone() Vec1[T] {
	return Vec1[T]{values: slices.Clone(v.values)}
}

// Get returns the element at index and whether it exists.
func (v *Vec1[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(v.values) {
		var zero T
		return zero, false
	}
	return v.values[index], true
}

// At returns a pointer to the element at index, or nil if out of range.
func (v *Vec1[T]) At(index int) *T {
	if index < 0 || index >= len(v.values) {
		return nil
	}
	return &v.values[index]
}

// Insert overwrites the element at index, or appends when index == Len().
// Any other index is ignored: the column never grows past its end.
func (v *Vec1[T]) Insert(value T, index int) {
	switch {
	case index < 0:
	case index < len(v.values):
		v.values[index] = value
	case index == len(v.values):
		v.values = append(v.values, value)
	}
}

// Window returns a view of [lo, hi) sharing storage with v.
// Appending to the view never overwrites elements of v past hi.
func (v *Vec1[T]) Window(lo, hi int) Vec1[T] {
	return Vec1[T]{values: v.values[lo:hi:hi]}
}

// String formats the column like a slice.
func (v Vec1[T]) String() string {
	return fmt.Sprint(v.values)
}

// resize sets the length to n, keeping existing elements and zero-filling
// new ones.
func (v *Vec1[T]) resize(n int) {
	if n <= len(v.values) {
		v.values = v.values[:n]
		return
	}
	v.values = append(v.values, make([]T, n-len(v.values))...)
}
