// Package vector provides an immutable, finite-dimensional vector of
// arbitrary-precision decimal coordinates.
//
// Coordinates are stored as shopspring decimals and every arithmetic result
// is rounded to a working precision of significant digits (30 by default),
// so chained dot products, square roots and projections do not pick up
// binary floating-point artifacts.
//
// # Construction
//
//	v, err := vector.New(1, "2.5", 3.0)
//	z, _ := vector.Zero(3)
//
// Every operation returns a new Vector; no method mutates its receiver or
// its operands.
//
// # Errors
//
// Operations that normalise internally re-signal a zero-magnitude operand
// with an error naming their own context:
//
//	Normalised            -> ErrZeroVector
//	AngleWith             -> ErrZeroVectorAngle
//	ComponentParallelTo   -> ErrNoUniqueParallelComponent
//	ComponentOrthogonalTo -> ErrNoUniqueOrthogonalComponent
//
// Any other error passes through unchanged.
package vector
