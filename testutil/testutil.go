package testutil

import (
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Int63n returns a non-negative pseudo-random number in [0, n). It panics
// if n <= 0.
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// UniformVector returns a vector of dim coordinates drawn uniformly from
// [-1, 1) with the given number of decimal places. dim and places must be
// positive.
func (r *RNG) UniformVector(dim int, places int32) vector.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformVector(dim, places)
}

// UniformVectors generates num random vectors, see UniformVector.
// Locks only once per call.
func (r *RNG) UniformVectors(num, dim int, places int32) []vector.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector, num)
	for i := range out {
		out[i] = r.uniformVector(dim, places)
	}
	return out
}

func (r *RNG) uniformVector(dim int, places int32) vector.Vector {
	scale := decimal.New(1, places).IntPart()
	coords := make([]decimal.Decimal, dim)
	for i := range coords {
		n := r.rand.Int63n(2*scale) - scale
		coords[i] = decimal.New(n, -places)
	}
	v, err := vector.FromDecimals(coords)
	if err != nil {
		panic(err)
	}
	return v
}

// DecimalsNear reports whether |want - got| < tol.
func DecimalsNear(want, got, tol decimal.Decimal) bool {
	return want.Sub(got).Abs().LessThan(tol)
}

// VectorsNear reports whether want and got have the same dimension and every
// coordinate pair is within tol.
func VectorsNear(want, got vector.Vector, tol decimal.Decimal) bool {
	if want.Dimension() != got.Dimension() {
		return false
	}
	for i := range want.Dimension() {
		if !DecimalsNear(want.At(i), got.At(i), tol) {
			return false
		}
	}
	return true
}
