package decmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(t *testing.T, want string, got decimal.Decimal, tol decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.True(t, w.Sub(got).Abs().LessThan(tol), "want %s, got %s", want, got)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		prec int32
		want string
	}{
		{"Zero", "0", 5, "0"},
		{"Short", "1.25", 5, "1.25"},
		{"HalfEvenDown", "1.225", 3, "1.22"},
		{"HalfEvenUp", "1.235", 3, "1.24"},
		{"Integer", "123456", 3, "123000"},
		{"Small", "0.000123456", 2, "0.00012"},
		{"Negative", "-2.71828", 3, "-2.72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(decimal.RequireFromString(tt.in), tt.prec)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestDiv(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		got, err := Div(decimal.NewFromInt(1), decimal.NewFromInt(4), DefaultPrecision)
		require.NoError(t, err)
		assert.Equal(t, "0.25", got.String())
	})

	t.Run("Repeating", func(t *testing.T) {
		got, err := Div(decimal.NewFromInt(1), decimal.NewFromInt(3), DefaultPrecision)
		require.NoError(t, err)
		assert.Equal(t, "0.333333333333333333333333333333", got.String())
	})

	t.Run("LargeQuotient", func(t *testing.T) {
		got, err := Div(decimal.New(1, 40), decimal.NewFromInt(3), 10)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("3333333333e30").Equal(got), "got %s", got)
	})

	t.Run("ZeroNumerator", func(t *testing.T) {
		got, err := Div(decimal.Zero, decimal.NewFromInt(7), DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("ZeroDivisor", func(t *testing.T) {
		_, err := Div(decimal.NewFromInt(1), decimal.Zero, DefaultPrecision)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestSqrt(t *testing.T) {
	t.Run("Perfect", func(t *testing.T) {
		got, err := Sqrt(decimal.NewFromInt(25), DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(got), "got %s", got)
	})

	t.Run("Two", func(t *testing.T) {
		got, err := Sqrt(decimal.NewFromInt(2), DefaultPrecision)
		require.NoError(t, err)
		assert.Equal(t, "1.41421356237309504880168872421", got.String())
	})

	t.Run("Fraction", func(t *testing.T) {
		got, err := Sqrt(decimal.RequireFromString("0.0625"), DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.25").Equal(got), "got %s", got)
	})

	t.Run("Zero", func(t *testing.T) {
		got, err := Sqrt(decimal.Zero, DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := Sqrt(decimal.NewFromInt(-1), DefaultPrecision)
		assert.ErrorIs(t, err, ErrNegativeSqrt)
	})
}

func TestPi(t *testing.T) {
	assert.Equal(t, "3.14159265358979323846264338328", Pi(DefaultPrecision).String())
	assert.Equal(t, "3.1416", Pi(5).String())
	assert.True(t, Pi(MaxPrecision).Equal(Pi(MaxPrecision+10)))
}

func TestAcos(t *testing.T) {
	tol := decimal.New(1, -27)

	tests := []struct {
		name string
		x    string
		want string
	}{
		{"Zero", "0", "1.57079632679489661923132169164"},
		{"Half", "0.5", "1.04719755119659774615421446109"},
		{"NegativeHalf", "-0.5", "2.09439510239319549230842892219"},
		{"NearOne", "0.99", "0.141539473324427218745789356975"},
		{"SqrtHalf", "0.707106781186547524400844362105", "0.785398163397448309615660845820"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Acos(decimal.RequireFromString(tt.x), DefaultPrecision)
			require.NoError(t, err)
			near(t, tt.want, got, tol)
		})
	}

	t.Run("One", func(t *testing.T) {
		got, err := Acos(decimal.NewFromInt(1), DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("MinusOne", func(t *testing.T) {
		got, err := Acos(decimal.NewFromInt(-1), DefaultPrecision)
		require.NoError(t, err)
		assert.True(t, Pi(DefaultPrecision).Equal(got))
	})

	t.Run("OutOfDomain", func(t *testing.T) {
		_, err := Acos(decimal.RequireFromString("1.0000001"), DefaultPrecision)
		assert.ErrorIs(t, err, ErrDomain)

		_, err = Acos(decimal.NewFromInt(-2), DefaultPrecision)
		assert.ErrorIs(t, err, ErrDomain)
	})
}
