package distance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

// Dot calculates the dot product of two vectors.
func Dot(a, b vector.Vector) (decimal.Decimal, error) {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vector.Vector) (decimal.Decimal, error) {
	d, err := a.Minus(b)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Dot(d)
}

// L2 calculates the Euclidean distance between two vectors.
func L2(a, b vector.Vector) (decimal.Decimal, error) {
	d, err := a.Minus(b)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Magnitude(), nil
}

// Cosine calculates the cosine similarity of two vectors.
// Fails with vector.ErrZeroVector if either vector has zero magnitude.
func Cosine(a, b vector.Vector) (decimal.Decimal, error) {
	ua, err := a.Normalised()
	if err != nil {
		return decimal.Zero, err
	}
	ub, err := b.Normalised()
	if err != nil {
		return decimal.Zero, err
	}
	return ua.Dot(ub)
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vector.Vector) (decimal.Decimal, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
