package vector

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ivalderrama/linear-algebra-refresher/internal/conv"
	"github.com/ivalderrama/linear-algebra-refresher/internal/decmath"
)

const (
	// DefaultPrecision is the working precision, in significant digits, of
	// vectors built by New, FromDecimals and Zero.
	DefaultPrecision = int(decmath.DefaultPrecision)

	// MinPrecision and MaxPrecision bound WithPrecision.
	MinPrecision = int(decmath.MinPrecision)
	MaxPrecision = int(decmath.MaxPrecision)
)

var defaultTolerance = decimal.New(1, -10)

// DefaultTolerance returns the threshold used by IsZero and IsOrthogonalTo,
// 1e-10.
func DefaultTolerance() decimal.Decimal {
	return defaultTolerance
}

// Vector is an immutable ordered tuple of decimal coordinates.
//
// The zero value has no coordinates and is not a valid vector; use New,
// FromDecimals or Zero. Vectors are safe for concurrent use.
type Vector struct {
	coordinates []decimal.Decimal
	precision   int32
}

// New creates a vector from numeric-representable values: Go integers and
// floats, numeric strings, *big.Int and decimal.Decimal.
func New(values ...any) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, ErrEmptyInput
	}
	coordinates := make([]decimal.Decimal, len(values))
	for i, x := range values {
		d, err := conv.ToDecimal(x)
		if err != nil {
			return Vector{}, &ErrInvalidElement{Index: i, Value: x, cause: err}
		}
		coordinates[i] = d
	}
	return Vector{coordinates: coordinates, precision: decmath.DefaultPrecision}, nil
}

// MustNew is like New but panics on error.
func MustNew(values ...any) Vector {
	v, err := New(values...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromDecimals creates a vector from decimal coordinates. The slice is copied.
func FromDecimals(coordinates []decimal.Decimal) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, ErrEmptyInput
	}
	out := make([]decimal.Decimal, len(coordinates))
	copy(out, coordinates)
	return Vector{coordinates: out, precision: decmath.DefaultPrecision}, nil
}

// Zero returns the zero vector of dimension n.
func Zero(n int) (Vector, error) {
	if n < 1 {
		return Vector{}, ErrEmptyInput
	}
	coordinates := make([]decimal.Decimal, n)
	for i := range coordinates {
		coordinates[i] = decimal.Zero
	}
	return Vector{coordinates: coordinates, precision: decmath.DefaultPrecision}, nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return len(v.coordinates)
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coordinates))
	copy(out, v.coordinates)
	return out
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) decimal.Decimal {
	return v.coordinates[i]
}

// Precision returns the working precision in significant digits.
func (v Vector) Precision() int {
	return int(v.prec())
}

// WithPrecision returns a copy of v whose operations round to p significant
// digits. Coordinates are not rounded.
func (v Vector) WithPrecision(p int) (Vector, error) {
	if p < MinPrecision || p > MaxPrecision {
		return Vector{}, &ErrInvalidPrecision{Precision: p}
	}
	return v.atPrecision(int32(p)), nil
}

// atPrecision is WithPrecision without the bounds check. Callers use it to
// carry guard digits past MaxPrecision.
func (v Vector) atPrecision(p int32) Vector {
	return Vector{coordinates: v.coordinates, precision: p}
}

func (v Vector) prec() int32 {
	if v.precision == 0 {
		return decmath.DefaultPrecision
	}
	return v.precision
}

// workingPrecision returns the precision of a binary operation.
func (v Vector) workingPrecision(w Vector) int32 {
	return max(v.prec(), w.prec())
}

// String returns the coordinates as "Vector: (c0, c1, ...)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector: (")
	for i, x := range v.coordinates {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Equal reports whether v and w have numerically equal coordinates. Vectors
// of different dimension are never equal.
func (v Vector) Equal(w Vector) bool {
	if len(v.coordinates) != len(w.coordinates) {
		return false
	}
	for i, x := range v.coordinates {
		if !x.Equal(w.coordinates[i]) {
			return false
		}
	}
	return true
}

func (v Vector) checkDimension(w Vector) error {
	if len(v.coordinates) != len(w.coordinates) {
		return &ErrDimensionMismatch{Expected: len(v.coordinates), Actual: len(w.coordinates)}
	}
	return nil
}

// Plus returns the element-wise sum v + w.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := v.checkDimension(w); err != nil {
		return Vector{}, err
	}
	prec := v.workingPrecision(w)
	out := make([]decimal.Decimal, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = decmath.Add(x, w.coordinates[i], prec)
	}
	return Vector{coordinates: out, precision: prec}, nil
}

// Minus returns the element-wise difference v - w.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := v.checkDimension(w); err != nil {
		return Vector{}, err
	}
	prec := v.workingPrecision(w)
	out := make([]decimal.Decimal, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = decmath.Sub(x, w.coordinates[i], prec)
	}
	return Vector{coordinates: out, precision: prec}, nil
}

// TimesScalar returns v with every coordinate multiplied by c. Use the
// decimal constructors (decimal.NewFromInt, decimal.NewFromFloat, ...) to
// promote other numeric types.
func (v Vector) TimesScalar(c decimal.Decimal) Vector {
	prec := v.prec()
	out := make([]decimal.Decimal, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = decmath.Mul(c, x, prec)
	}
	return Vector{coordinates: out, precision: prec}
}

// Dot returns the sum of the element-wise products of v and w.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := v.checkDimension(w); err != nil {
		return decimal.Zero, err
	}
	prec := v.workingPrecision(w)
	sum := decimal.Zero
	for i, x := range v.coordinates {
		sum = decmath.Add(sum, decmath.Mul(x, w.coordinates[i], prec), prec)
	}
	return sum, nil
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() decimal.Decimal {
	prec := v.prec()
	sum := decimal.Zero
	for _, x := range v.coordinates {
		sum = decmath.Add(sum, decmath.Mul(x, x, prec), prec)
	}
	// A sum of squares is never negative.
	m, _ := decmath.Sqrt(sum, prec)
	return m
}

// Normalised returns the unit vector in the direction of v. It fails with
// ErrZeroVector when v has zero magnitude.
func (v Vector) Normalised() (Vector, error) {
	inv, err := decmath.Div(decimal.NewFromInt(1), v.Magnitude(), v.prec())
	if err != nil {
		return Vector{}, translate(err, decmath.ErrDivisionByZero, ErrZeroVector)
	}
	return v.TimesScalar(inv), nil
}

// IsZero reports whether the magnitude of v is below DefaultTolerance().
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(defaultTolerance)
}

// IsZeroWithin reports whether the magnitude of v is below tolerance.
func (v Vector) IsZeroWithin(tolerance decimal.Decimal) bool {
	return v.Magnitude().LessThan(tolerance)
}
