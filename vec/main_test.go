package vec

import (
	"testing"

	"github.com/hupe1980/unitvec/internal/kernel"
)

// eachMode runs fn once per available kernel mode so that both the
// specialized and the zip fallback paths are exercised.
func eachMode(t *testing.T, fn func(t *testing.T)) {
	t.Helper()

	modes := []kernel.Mode{kernel.Generic, kernel.Gonum}
	if kernel.HasFMA() {
		modes = append(modes, kernel.FMA)
	}

	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			restore := kernel.Use(m)
			defer restore()
			fn(t)
		})
	}
}

// shapePanic returns the *ShapeError fn panics with, or nil.
func shapePanic(fn func()) (err *ShapeError) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(*ShapeError)
		}
	}()
	fn()
	return nil
}
