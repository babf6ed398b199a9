// Package linalg runs vector arithmetic over batches of decimal vectors.
//
// The vector package holds the arithmetic itself: an immutable Vector of
// arbitrary-precision decimal coordinates with sums, products, projections,
// angles and cross products. Vectors share no mutable state, so independent
// operations over many of them can run in parallel. A Processor does that
// over a bounded pool of goroutines, with structured logging and metrics.
//
// # Quick Start
//
//	p, _ := linalg.New(
//	    linalg.WithConcurrency(8),
//	    linalg.WithLogger(linalg.NewJSONLogger(slog.LevelInfo)),
//	)
//	units, err := p.Normalise(ctx, vectors)
//	zeros, err := p.SelectZero(ctx, vectors) // *roaring.Bitmap of positions
//
// # Errors
//
// The first failing item cancels the rest of the batch and is reported as
// *ErrItem, which names the operation and position and wraps the vector
// error:
//
//	var item *linalg.ErrItem
//	if errors.As(err, &item) && errors.Is(err, vector.ErrZeroVector) {
//	    log.Printf("vector %d has no direction", item.Index)
//	}
package linalg
