// Package testutil provides testing utilities for linmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source that produces vectors,
// matrices and scalars for property-style tests.
//
// # Random Value Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3)       // linmath.Vector with 3 components
//	m := rng.Matrix(4)       // linmath.Matrix, 4×4
//	k := rng.NonZeroScalar() // safe divisor
package testutil
