package linalg

import (
	"fmt"
)

// ErrItem indicates the failure of one item of a batch.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrItem struct {
	Op    Op
	Index int
	cause error
}

func (e *ErrItem) Error() string {
	return fmt.Sprintf("%s: item %d: %v", e.Op, e.Index, e.cause)
}

func (e *ErrItem) Unwrap() error { return e.cause }

// ErrLengthMismatch indicates pairwise batch inputs of different length.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}

// ErrInvalidConcurrency indicates a non-positive concurrency limit.
type ErrInvalidConcurrency struct {
	Concurrency int
}

func (e *ErrInvalidConcurrency) Error() string {
	return fmt.Sprintf("invalid concurrency: %d", e.Concurrency)
}
