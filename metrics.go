package linalg

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each batch operation.
	// count is the number of items submitted, failed is the number of items
	// whose operation returned an error, duration is the total time taken.
	RecordBatch(op Op, count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(Op, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchItems      atomic.Int64
	BatchFailed     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ Op, count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if failed > 0 {
		b.BatchErrors.Add(1)
		b.BatchFailed.Add(int64(failed))
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchFailed:   b.BatchFailed.Load(),
		BatchAvgNanos: b.getAvgBatchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	count := b.BatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchErrors   int64
	BatchItems    int64
	BatchFailed   int64
	BatchAvgNanos int64
}
