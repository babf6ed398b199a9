// Package testutil provides testing utilities for decimal vectors.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded generator of random decimal vectors and helpers for
// comparing results within a tolerance.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.UniformVector(3, 4)        // 3 coordinates in [-1, 1), 4 decimal places
//	vs := rng.UniformVectors(100, 3, 4) // batch of the same
//
// # Approximate Comparison
//
//	ok := testutil.VectorsNear(want, got, decimal.New(1, -25))
package testutil
