// Package decmath implements working-precision arithmetic on top of
// shopspring/decimal.
//
// shopspring/decimal keeps sums and products exact and only rounds on
// division. Vector math needs a decimal context instead: every result is
// rounded to a fixed number of significant digits. The helpers here provide
// that rounding together with the transcendental functions the decimal type
// lacks (square root, arccosine, π).
package decmath

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision is the default number of significant digits.
	DefaultPrecision int32 = 30

	// MinPrecision is the smallest supported working precision.
	MinPrecision int32 = 30

	// MaxPrecision is the largest supported working precision. It is bounded
	// by the number of digits of π kept in piDigits.
	MaxPrecision int32 = 60

	// Guard is the number of extra digits carried through intermediate
	// steps of Sqrt, Acos and Div.
	Guard int32 = 5
)

var (
	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("decmath: division by zero")

	// ErrNegativeSqrt is returned by Sqrt for negative operands.
	ErrNegativeSqrt = errors.New("decmath: square root of negative number")

	// ErrDomain is returned by Acos for operands outside [-1, 1].
	ErrDomain = errors.New("decmath: argument out of domain")
)

var (
	one    = decimal.NewFromInt(1)
	two    = decimal.NewFromInt(2)
	negOne = decimal.NewFromInt(-1)

	// atanLimit bounds the Taylor series argument after halving.
	atanLimit = decimal.New(1, -1)

	piDigits = decimal.RequireFromString("3.1415926535897932384626433832795028841971693993751058209749445923078")
)

// Round rounds d to prec significant digits using round half to even.
func Round(d decimal.Decimal, prec int32) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	digits := int32(d.NumDigits())
	if digits <= prec {
		return d
	}
	return d.RoundBank(prec - digits - d.Exponent())
}

// Add returns a+b rounded to prec significant digits.
func Add(a, b decimal.Decimal, prec int32) decimal.Decimal {
	return Round(a.Add(b), prec)
}

// Sub returns a-b rounded to prec significant digits.
func Sub(a, b decimal.Decimal, prec int32) decimal.Decimal {
	return Round(a.Sub(b), prec)
}

// Mul returns a*b rounded to prec significant digits.
func Mul(a, b decimal.Decimal, prec int32) decimal.Decimal {
	return Round(a.Mul(b), prec)
}

// Div returns a/b rounded to prec significant digits.
func Div(a, b decimal.Decimal, prec int32) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if a.IsZero() {
		return decimal.Zero, nil
	}
	// Enough decimal places for prec significant digits of the quotient.
	places := prec + Guard - adjusted(a) + adjusted(b)
	if places < 0 {
		places = 0
	}
	return Round(a.DivRound(b, places), prec), nil
}

// adjusted returns the exponent of the leading digit of d.
func adjusted(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent() - 1
}

// Sqrt returns the square root of d rounded to prec significant digits.
//
// The root is taken with math/big at a binary precision wide enough for
// prec+Guard decimal digits, which makes it correctly rounded before the
// final decimal rounding.
func Sqrt(d decimal.Decimal, prec int32) (decimal.Decimal, error) {
	switch d.Sign() {
	case -1:
		return decimal.Zero, ErrNegativeSqrt
	case 0:
		return decimal.Zero, nil
	}

	bits := uint(math.Ceil(float64(prec+Guard)*math.Log2(10))) + 64
	f, _, err := big.ParseFloat(d.String(), 10, bits, big.ToNearestEven)
	if err != nil {
		return decimal.Zero, err
	}
	r := new(big.Float).SetPrec(bits).Sqrt(f)

	out, err := decimal.NewFromString(r.Text('e', int(prec+Guard)))
	if err != nil {
		return decimal.Zero, err
	}
	return Round(out, prec), nil
}

// Pi returns π rounded to prec significant digits. prec is capped at
// MaxPrecision.
func Pi(prec int32) decimal.Decimal {
	if prec > MaxPrecision {
		prec = MaxPrecision
	}
	return Round(piDigits, prec)
}

// Acos returns the arccosine of x in radians, rounded to prec significant
// digits. x must lie in [-1, 1].
func Acos(x decimal.Decimal, prec int32) (decimal.Decimal, error) {
	if x.GreaterThan(one) || x.LessThan(negOne) {
		return decimal.Zero, ErrDomain
	}
	switch {
	case x.Equal(one):
		return decimal.Zero, nil
	case x.Equal(negOne):
		return Pi(prec), nil
	}

	work := prec + Guard

	// acos(x) = 2·atan(√((1-x)/(1+x))) for x in (-1, 1].
	q, err := Div(one.Sub(x), one.Add(x), work)
	if err != nil {
		return decimal.Zero, err
	}
	s, err := Sqrt(q, work)
	if err != nil {
		return decimal.Zero, err
	}
	a, err := atan(s, work)
	if err != nil {
		return decimal.Zero, err
	}
	return Round(a.Mul(two), prec), nil
}

// atan returns the arctangent of a non-negative y at prec digits.
func atan(y decimal.Decimal, prec int32) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Zero, nil
	}
	if y.GreaterThan(one) {
		// atan(y) = π/2 - atan(1/y)
		inv, err := Div(one, y, prec)
		if err != nil {
			return decimal.Zero, err
		}
		a, err := atan(inv, prec)
		if err != nil {
			return decimal.Zero, err
		}
		halfPi, _ := Div(Pi(prec), two, prec)
		return Sub(halfPi, a, prec), nil
	}

	// atan(y) = 2·atan(y / (1 + √(1+y²))) until the series converges fast.
	doublings := int64(0)
	for y.GreaterThan(atanLimit) {
		r, err := Sqrt(Add(one, Mul(y, y, prec), prec), prec)
		if err != nil {
			return decimal.Zero, err
		}
		if y, err = Div(y, Add(one, r, prec), prec); err != nil {
			return decimal.Zero, err
		}
		doublings++
	}

	// atan(y) = y - y³/3 + y⁵/5 - ...
	eps := decimal.New(1, -(prec + 2))
	y2 := Mul(y, y, prec)
	pow := y
	sum := y
	for k := int64(1); ; k++ {
		pow = Mul(pow, y2, prec).Neg()
		term, err := Div(pow, decimal.NewFromInt(2*k+1), prec)
		if err != nil {
			return decimal.Zero, err
		}
		if term.Abs().LessThan(eps) {
			break
		}
		sum = Add(sum, term, prec)
	}
	return Round(sum.Mul(decimal.NewFromInt(1<<doublings)), prec), nil
}
