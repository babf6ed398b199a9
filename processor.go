package linalg

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ivalderrama/linear-algebra-refresher/distance"
	"github.com/ivalderrama/linear-algebra-refresher/internal/conv"
	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

// Op names a batch operation in errors, logs and metrics.
type Op string

const (
	OpNormalise        Op = "normalise"
	OpMagnitude        Op = "magnitude"
	OpDot              Op = "dot"
	OpCross            Op = "cross"
	OpAngle            Op = "angle"
	OpDistance         Op = "distance"
	OpDecompose        Op = "decompose"
	OpSum              Op = "sum"
	OpSelectZero       Op = "select_zero"
	OpSelectOrthogonal Op = "select_orthogonal"
	OpSelectParallel   Op = "select_parallel"
)

// Decomposition splits a vector into the parts parallel and orthogonal to a
// basis. Parallel + Orthogonal equals the original vector within the working
// precision.
type Decomposition struct {
	Parallel   vector.Vector
	Orthogonal vector.Vector
}

// Processor applies vector operations to batches of independent vectors in
// parallel. A Processor is safe for concurrent use.
type Processor struct {
	opts options
}

// New creates a Processor.
func New(optFns ...Option) (*Processor, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return &Processor{opts: opts}, nil
}

// prepare applies the configured working precision to v.
func (p *Processor) prepare(v vector.Vector) (vector.Vector, error) {
	if p.opts.precision == 0 {
		return v, nil
	}
	return v.WithPrecision(p.opts.precision)
}

// run evaluates fn for every index in [0, n) on the worker pool. The first
// error cancels the remaining items.
func run[T any](ctx context.Context, p *Processor, op Op, n int, fn func(i int) (T, error)) ([]T, error) {
	start := time.Now()
	out := make([]T, n)

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.concurrency)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(i)
			if err != nil {
				failed.Add(1)
				return &ErrItem{Op: op, Index: i, cause: err}
			}
			out[i] = r
			return nil
		})
	}
	err := g.Wait()

	p.opts.metricsCollector.RecordBatch(op, n, int(failed.Load()), time.Since(start))
	p.opts.logger.LogBatch(ctx, op, n, int(failed.Load()), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// pairwise runs fn over the prepared pairs (a[i], b[i]).
func pairwise[T any](ctx context.Context, p *Processor, op Op, a, b []vector.Vector, fn func(v, w vector.Vector) (T, error)) ([]T, error) {
	if len(a) != len(b) {
		return nil, &ErrLengthMismatch{Left: len(a), Right: len(b)}
	}
	return run(ctx, p, op, len(a), func(i int) (T, error) {
		var zero T
		v, err := p.prepare(a[i])
		if err != nil {
			return zero, err
		}
		w, err := p.prepare(b[i])
		if err != nil {
			return zero, err
		}
		return fn(v, w)
	})
}

// each runs fn over every prepared vector of vs.
func each[T any](ctx context.Context, p *Processor, op Op, vs []vector.Vector, fn func(v vector.Vector) (T, error)) ([]T, error) {
	return run(ctx, p, op, len(vs), func(i int) (T, error) {
		v, err := p.prepare(vs[i])
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v)
	})
}

// Normalise returns the unit vector of every input.
func (p *Processor) Normalise(ctx context.Context, vs []vector.Vector) ([]vector.Vector, error) {
	return each(ctx, p, OpNormalise, vs, vector.Vector.Normalised)
}

// Magnitudes returns the Euclidean length of every input.
func (p *Processor) Magnitudes(ctx context.Context, vs []vector.Vector) ([]decimal.Decimal, error) {
	return each(ctx, p, OpMagnitude, vs, func(v vector.Vector) (decimal.Decimal, error) {
		return v.Magnitude(), nil
	})
}

// Dots returns a[i]·b[i] for every pair.
func (p *Processor) Dots(ctx context.Context, a, b []vector.Vector) ([]decimal.Decimal, error) {
	return pairwise(ctx, p, OpDot, a, b, vector.Vector.Dot)
}

// Crosses returns a[i]×b[i] for every pair.
func (p *Processor) Crosses(ctx context.Context, a, b []vector.Vector) ([]vector.Vector, error) {
	return pairwise(ctx, p, OpCross, a, b, vector.Vector.Cross)
}

// Angles returns the angle between a[i] and b[i] for every pair, in degrees
// when inDegrees is set and in radians otherwise.
func (p *Processor) Angles(ctx context.Context, a, b []vector.Vector, inDegrees bool) ([]decimal.Decimal, error) {
	angle := vector.Vector.AngleWith
	if inDegrees {
		angle = vector.Vector.AngleWithDegrees
	}
	return pairwise(ctx, p, OpAngle, a, b, angle)
}

// Distances returns the metric m between a[i] and b[i] for every pair.
func (p *Processor) Distances(ctx context.Context, a, b []vector.Vector, m distance.Metric) ([]decimal.Decimal, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}
	return pairwise(ctx, p, OpDistance, a, b, func(v, w vector.Vector) (decimal.Decimal, error) {
		return fn(v, w)
	})
}

// Decompose splits every input into its components parallel and orthogonal
// to basis. A zero basis fails with vector.ErrNoUniqueParallelComponent.
func (p *Processor) Decompose(ctx context.Context, vs []vector.Vector, basis vector.Vector) ([]Decomposition, error) {
	basis, err := p.prepare(basis)
	if err != nil {
		return nil, err
	}
	return each(ctx, p, OpDecompose, vs, func(v vector.Vector) (Decomposition, error) {
		parallel, err := v.ComponentParallelTo(basis)
		if err != nil {
			return Decomposition{}, err
		}
		orthogonal, err := v.Minus(parallel)
		if err != nil {
			return Decomposition{}, err
		}
		return Decomposition{Parallel: parallel, Orthogonal: orthogonal}, nil
	})
}

// Sum folds the inputs with Plus in order. It fails with
// vector.ErrEmptyInput when vs is empty.
func (p *Processor) Sum(ctx context.Context, vs []vector.Vector) (vector.Vector, error) {
	start := time.Now()
	sum, failed, err := p.sum(ctx, vs)
	p.opts.metricsCollector.RecordBatch(OpSum, len(vs), failed, time.Since(start))
	p.opts.logger.LogBatch(ctx, OpSum, len(vs), failed, err)
	return sum, err
}

func (p *Processor) sum(ctx context.Context, vs []vector.Vector) (vector.Vector, int, error) {
	if len(vs) == 0 {
		return vector.Vector{}, 0, vector.ErrEmptyInput
	}
	acc, err := p.prepare(vs[0])
	if err != nil {
		return vector.Vector{}, 1, &ErrItem{Op: OpSum, Index: 0, cause: err}
	}
	for i := 1; i < len(vs); i++ {
		if err := ctx.Err(); err != nil {
			return vector.Vector{}, 0, err
		}
		v, err := p.prepare(vs[i])
		if err == nil {
			acc, err = acc.Plus(v)
		}
		if err != nil {
			return vector.Vector{}, 1, &ErrItem{Op: OpSum, Index: i, cause: err}
		}
	}
	return acc, 0, nil
}

// SelectZero returns the positions of the zero vectors in vs.
func (p *Processor) SelectZero(ctx context.Context, vs []vector.Vector) (*roaring.Bitmap, error) {
	flags, err := each(ctx, p, OpSelectZero, vs, func(v vector.Vector) (bool, error) {
		return v.IsZero(), nil
	})
	if err != nil {
		return nil, err
	}
	return toBitmap(flags)
}

// SelectOrthogonal returns the positions of the vectors in vs orthogonal to ref.
func (p *Processor) SelectOrthogonal(ctx context.Context, vs []vector.Vector, ref vector.Vector) (*roaring.Bitmap, error) {
	ref, err := p.prepare(ref)
	if err != nil {
		return nil, err
	}
	flags, err := each(ctx, p, OpSelectOrthogonal, vs, ref.IsOrthogonalTo)
	if err != nil {
		return nil, err
	}
	return toBitmap(flags)
}

// SelectParallel returns the positions of the vectors in vs parallel to ref.
// See vector.Vector.IsParallelTo for the exactness of the test.
func (p *Processor) SelectParallel(ctx context.Context, vs []vector.Vector, ref vector.Vector) (*roaring.Bitmap, error) {
	ref, err := p.prepare(ref)
	if err != nil {
		return nil, err
	}
	flags, err := each(ctx, p, OpSelectParallel, vs, ref.IsParallelTo)
	if err != nil {
		return nil, err
	}
	return toBitmap(flags)
}

func toBitmap(flags []bool) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i, ok := range flags {
		if !ok {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		bm.Add(pos)
	}
	return bm, nil
}
