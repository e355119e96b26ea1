// Package testutil provides testing utilities for unitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random columns.
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Vec1(n, -10, 10)
//	b := rng.Vec2(n, -10, 10)
//	s := rng.NonZero(0.5, 4) // scalar safe to divide by
package testutil
