package vector

import (
	"github.com/shopspring/decimal"

	"github.com/ivalderrama/linear-algebra-refresher/internal/decmath"
)

var (
	one        = decimal.NewFromInt(1)
	negOne     = decimal.NewFromInt(-1)
	two        = decimal.NewFromInt(2)
	halfCircle = decimal.NewFromInt(180)
)

// AngleWith returns the angle between v and w in radians.
func (v Vector) AngleWith(w Vector) (decimal.Decimal, error) {
	return v.angleWith(w, false)
}

// AngleWithDegrees returns the angle between v and w in degrees.
func (v Vector) AngleWithDegrees(w Vector) (decimal.Decimal, error) {
	return v.angleWith(w, true)
}

func (v Vector) angleWith(w Vector, inDegrees bool) (decimal.Decimal, error) {
	prec := v.workingPrecision(w)

	// The unit vectors and their dot product carry guard digits so that the
	// cosine of (anti)parallel vectors rounds to exactly ±1 at prec.
	wide := prec + decmath.Guard
	u1, err := v.atPrecision(wide).Normalised()
	if err != nil {
		return decimal.Zero, translate(err, ErrZeroVector, ErrZeroVectorAngle)
	}
	u2, err := w.atPrecision(wide).Normalised()
	if err != nil {
		return decimal.Zero, translate(err, ErrZeroVector, ErrZeroVectorAngle)
	}
	cos, err := u1.Dot(u2)
	if err != nil {
		return decimal.Zero, err
	}
	cos = decmath.Round(cos, prec)

	if cos.GreaterThan(one) {
		cos = one
	} else if cos.LessThan(negOne) {
		cos = negOne
	}

	rad, err := decmath.Acos(cos, prec)
	if err != nil {
		return decimal.Zero, err
	}
	if !inDegrees {
		return rad, nil
	}
	perRadian, err := decmath.Div(halfCircle, decmath.Pi(prec), prec)
	if err != nil {
		return decimal.Zero, err
	}
	return decmath.Mul(rad, perRadian, prec), nil
}

// IsOrthogonalTo reports whether |v·w| is below DefaultTolerance(). The zero
// vector is orthogonal to every vector.
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	return v.IsOrthogonalToWithin(w, defaultTolerance)
}

// IsOrthogonalToWithin reports whether |v·w| is below tolerance.
func (v Vector) IsOrthogonalToWithin(w Vector, tolerance decimal.Decimal) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return d.Abs().LessThan(tolerance), nil
}

// IsParallelTo reports whether either vector is zero or the angle between
// them is exactly 0 or exactly π at the working precision.
//
// The cosine is rounded to the working precision before the arccosine, so
// scalar multiples of a vector always yield exactly 0 or π. There is no
// further tolerance band.
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	angle, err := v.AngleWith(w)
	if err != nil {
		return false, err
	}
	return angle.IsZero() || angle.Equal(decmath.Pi(v.workingPrecision(w))), nil
}

// ComponentParallelTo returns the projection of v onto basis. It fails with
// ErrNoUniqueParallelComponent when basis is the zero vector.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	u, err := basis.Normalised()
	if err != nil {
		return Vector{}, translate(err, ErrZeroVector, ErrNoUniqueParallelComponent)
	}
	weight, err := v.Dot(u)
	if err != nil {
		return Vector{}, err
	}
	return u.TimesScalar(weight), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis. It fails
// with ErrNoUniqueOrthogonalComponent when basis is the zero vector.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	projection, err := v.ComponentParallelTo(basis)
	if err != nil {
		return Vector{}, translate(err, ErrNoUniqueParallelComponent, ErrNoUniqueOrthogonalComponent)
	}
	return v.Minus(projection)
}

// Cross returns the cross product v × w.
//
// Two-dimensional operands are embedded in three dimensions with a zero
// third coordinate, so the result is always three-dimensional. Any other
// pairing fails with *ErrUnsupportedDimension.
func (v Vector) Cross(w Vector) (Vector, error) {
	switch {
	case v.Dimension() == 3 && w.Dimension() == 3:
		prec := v.workingPrecision(w)
		x1, y1, z1 := v.coordinates[0], v.coordinates[1], v.coordinates[2]
		x2, y2, z2 := w.coordinates[0], w.coordinates[1], w.coordinates[2]
		return Vector{
			coordinates: []decimal.Decimal{
				decmath.Sub(decmath.Mul(y1, z2, prec), decmath.Mul(y2, z1, prec), prec),
				decmath.Sub(decmath.Mul(x1, z2, prec), decmath.Mul(x2, z1, prec), prec).Neg(),
				decmath.Sub(decmath.Mul(x1, y2, prec), decmath.Mul(x2, y1, prec), prec),
			},
			precision: prec,
		}, nil
	case v.Dimension() == 2 && w.Dimension() == 2:
		return v.embed3().Cross(w.embed3())
	default:
		return Vector{}, &ErrUnsupportedDimension{Left: v.Dimension(), Right: w.Dimension()}
	}
}

// embed3 appends a zero coordinate to a two-dimensional vector.
func (v Vector) embed3() Vector {
	return Vector{
		coordinates: []decimal.Decimal{v.coordinates[0], v.coordinates[1], decimal.Zero},
		precision:   v.precision,
	}
}

// AreaOfParallelogramWith returns the area of the parallelogram spanned by v
// and w.
func (v Vector) AreaOfParallelogramWith(w Vector) (decimal.Decimal, error) {
	c, err := v.Cross(w)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Magnitude(), nil
}

// AreaOfTriangleWith returns half the area of the parallelogram spanned by v
// and w.
func (v Vector) AreaOfTriangleWith(w Vector) (decimal.Decimal, error) {
	area, err := v.AreaOfParallelogramWith(w)
	if err != nil {
		return decimal.Zero, err
	}
	return decmath.Div(area, two, v.workingPrecision(w))
}
