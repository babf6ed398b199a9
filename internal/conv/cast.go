package conv

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFinite is returned for NaN and infinite floats.
	ErrNotFinite = errors.New("value is not a finite number")

	// ErrUnsupportedType is returned for values that have no numeric reading.
	ErrUnsupportedType = errors.New("unsupported value type")
)

// ToDecimal promotes v into a decimal.Decimal.
//
// Floats are converted through their shortest decimal representation, so
// 0.1 becomes exactly 0.1. Strings are parsed with decimal.NewFromString.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, ErrUnsupportedType
		}
		return *x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, ErrNotFinite
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, ErrNotFinite
		}
		return decimal.NewFromFloat(x), nil
	case string:
		return decimal.NewFromString(x)
	case *big.Int:
		if x == nil {
			return decimal.Zero, ErrUnsupportedType
		}
		return decimal.NewFromBigInt(x, 0), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func fromUint64(u uint64) decimal.Decimal {
	if u <= math.MaxInt64 {
		return decimal.NewFromInt(int64(u))
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}
