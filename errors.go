package unitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitvec/vec"
)

var (
	// ErrInvalidTimeStep is returned when a step duration is negative, NaN or infinite.
	ErrInvalidTimeStep = errors.New("time step must be finite and non-negative")

	// ErrEmptySystem is returned by operations that need at least one body.
	ErrEmptySystem = errors.New("system has no bodies")
)

// ErrShapeMismatch indicates columns or inputs of different lengths.
//
// The underlying *vec.ShapeError can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Op       string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrInvalidOption indicates a configuration value out of range.
type ErrInvalidOption struct {
	Name  string
	Value int
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid option %s: %d", e.Name, e.Value)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var se *vec.ShapeError
	if errors.As(err, &se) {
		return &ErrShapeMismatch{Op: se.Op, Expected: se.Want, Actual: se.Got, cause: err}
	}

	return err
}
