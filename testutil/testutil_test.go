package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	vs := rng.UniformVectors(8, 32, 3)

	assert.Equal(t, 8, len(vs))
	one := decimal.NewFromInt(1)
	for _, v := range vs {
		assert.Equal(t, 32, v.Dimension())
		for _, c := range v.Coordinates() {
			assert.True(t, c.LessThan(one))
			assert.True(t, c.GreaterThanOrEqual(one.Neg()))
			assert.LessOrEqual(t, -c.Exponent(), int32(3))
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVector(10, 6)
	rng.Reset()
	v2 := rng.UniformVector(10, 6)

	assert.True(t, v1.Equal(v2))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestInt63n(t *testing.T) {
	rng := NewRNG(7)
	for range 100 {
		n := rng.Int63n(5)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(5))
	}
}

func TestVectorsNear(t *testing.T) {
	tol := decimal.New(1, -3)

	assert.True(t, VectorsNear(vector.MustNew(1, 2), vector.MustNew("1.0005", "1.9995"), tol))
	assert.False(t, VectorsNear(vector.MustNew(1, 2), vector.MustNew("1.002", 2), tol))
	assert.False(t, VectorsNear(vector.MustNew(1, 2), vector.MustNew(1, 2, 0), tol))
}
