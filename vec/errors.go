package vec

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is wrapped by every *ShapeError.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError reports a paired operation on containers of different lengths.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Op, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// CheckShape returns a *ShapeError if any of lens differs from n.
// It lets callers validate inputs before entering an operation that panics.
func CheckShape(op string, n int, lens ...int) error {
	for _, m := range lens {
		if m != n {
			return &ShapeError{Op: op, Want: n, Got: m}
		}
	}
	return nil
}

// span returns the common traversal length of a paired operation.
func span(op string, n int, others ...int) int {
	for _, m := range others {
		if m == n {
			continue
		}
		if checked {
			panic(&ShapeError{Op: op, Want: n, Got: m})
		}
		n = min(n, m)
	}
	return n
}
