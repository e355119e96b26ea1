package vec

import "fmt"

// Vec2 is a column of 2-component vectors stored as two parallel columns.
//
// X and Y always have the same length. They are exported for direct column
// access; callers that resize them independently break every paired
// operation.
type Vec2[T Number] struct {
	X Vec1[T]
	Y Vec1[T]
}

// New2 returns an empty column of vectors.
func New2[T Number]() Vec2[T] {
	return Vec2[T]{}
}

// FromSlices wraps x and y without copying.
// It panics with a *ShapeError if their lengths differ.
func FromSlices[T Number](x, y []T) Vec2[T] {
	if err := CheckShape("vec.FromSlices", len(x), len(y)); err != nil {
		panic(err)
	}
	return Vec2[T]{X: FromSlice(x), Y: FromSlice(y)}
}

// WithLen2 returns a column of n zero vectors.
func WithLen2[T Number](n int) Vec2[T] {
	return Vec2[T]{X: WithLen[T](n), Y: WithLen[T](n)}
}

// Len returns the number of vectors.
func (v *Vec2[T]) Len() int {
	return v.X.Len()
}

// IsEmpty reports whether the column has no vectors.
func (v *Vec2[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Clone returns a deep copy.
func (v *Vec2[T]) Clone() Vec2[T] {
	return Vec2[T]{X: v.X.Clone(), Y: v.Y.Clone()}
}

// Get returns the vector at index and whether it exists.
func (v *Vec2[T]) Get(index int) (x, y T, ok bool) {
	px, py := v.At(index)
	if px == nil {
		return x, y, false
	}
	return *px, *py, true
}

// At returns pointers to both components at index, or two nils if either
// column lacks the index.
func (v *Vec2[T]) At(index int) (x, y *T) {
	px, py := v.X.At(index), v.Y.At(index)
	if px == nil || py == nil {
		return nil, nil
	}
	return px, py
}

// Insert overwrites the vector at index, or appends when index == Len().
// Both columns change together or not at all; any other index is ignored.
func (v *Vec2[T]) Insert(x, y T, index int) {
	if px, py := v.At(index); px != nil {
		*px, *py = x, y
		return
	}
	if index == v.X.Len() && index == v.Y.Len() {
		v.X.values = append(v.X.values, x)
		v.Y.values = append(v.Y.values, y)
	}
}

// Window returns a view of [lo, hi) sharing storage with v.
func (v *Vec2[T]) Window(lo, hi int) Vec2[T] {
	return Vec2[T]{X: v.X.Window(lo, hi), Y: v.Y.Window(lo, hi)}
}

// String formats the column as a list of (x, y) pairs.
func (v Vec2[T]) String() string {
	n := min(v.X.Len(), v.Y.Len())
	pairs := make([][2]T, n)
	for i := range pairs {
		pairs[i] = [2]T{v.X.values[i], v.Y.values[i]}
	}
	return fmt.Sprint(pairs)
}

// size asserts the X/Y invariant and returns the common length.
func (v *Vec2[T]) size(op string) int {
	return span(op, v.X.Len(), v.Y.Len())
}
