package linalg

import (
	"log/slog"
	"runtime"

	"github.com/ivalderrama/linear-algebra-refresher/vector"
)

type options struct {
	concurrency      int
	precision        int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Processor.
type Option func(*options)

// WithConcurrency limits the number of items processed at the same time.
// Defaults to runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithPrecision sets the working precision, in significant digits, applied
// to every input vector before it is processed. Zero keeps the precision of
// each input.
//
// The value must lie in [vector.MinPrecision, vector.MaxPrecision].
func WithPrecision(p int) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring batches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &linalg.BasicMetricsCollector{}
//	p, _ := linalg.New(linalg.WithMetricsCollector(metrics))
//	// ... use p ...
//	stats := metrics.GetStats()
//	fmt.Printf("Batches: %d, Avg latency: %dns\n", stats.BatchCount, stats.BatchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for batches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := linalg.NewJSONLogger(slog.LevelInfo)
//	p, _ := linalg.New(linalg.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		concurrency:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.concurrency < 1 {
		return options{}, &ErrInvalidConcurrency{Concurrency: o.concurrency}
	}
	if o.precision != 0 && (o.precision < vector.MinPrecision || o.precision > vector.MaxPrecision) {
		return options{}, &vector.ErrInvalidPrecision{Precision: o.precision}
	}
	return o, nil
}
