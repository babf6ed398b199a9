package vector

import (
	"errors"
	"fmt"
)

// The messages below are part of the public contract and are kept verbatim.
var (
	// ErrEmptyInput is returned when constructing a vector without coordinates.
	ErrEmptyInput = errors.New("The coordinates must be nonempty")

	// ErrZeroVector is returned when normalising a zero-magnitude vector.
	ErrZeroVector = errors.New("Cannot normalize the zero vector")

	// ErrZeroVectorAngle is returned when an angle involves a zero vector.
	ErrZeroVectorAngle = errors.New("Cannot compute an angle with a zero vector")

	// ErrNoUniqueParallelComponent is returned when projecting onto a zero basis.
	ErrNoUniqueParallelComponent = errors.New("No unique parallel component")

	// ErrNoUniqueOrthogonalComponent is returned when decomposing against a zero basis.
	ErrNoUniqueOrthogonalComponent = errors.New("No unique orthogonal component")
)

// ErrInvalidElement indicates a coordinate that cannot be promoted to a decimal.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidElement struct {
	Index int
	Value any
	cause error
}

func (e *ErrInvalidElement) Error() string {
	return fmt.Sprintf("invalid coordinate at index %d: %v", e.Index, e.Value)
}

func (e *ErrInvalidElement) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a binary operation on vectors of different
// dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrUnsupportedDimension indicates a cross product outside two or three
// dimensions.
type ErrUnsupportedDimension struct {
	Left  int
	Right int
}

func (e *ErrUnsupportedDimension) Error() string {
	return "Only defined in two or three dimensions"
}

// ErrInvalidPrecision indicates a working precision outside the supported range.
type ErrInvalidPrecision struct {
	Precision int
}

func (e *ErrInvalidPrecision) Error() string {
	return fmt.Sprintf("invalid precision: %d", e.Precision)
}

// translate re-signals err as to when it is (or wraps) from. Any other error
// is returned unchanged.
func translate(err, from, to error) error {
	if errors.Is(err, from) {
		return to
	}
	return err
}
