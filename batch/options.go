package batch

import (
	"runtime"

	"github.com/SayHelloLexa/linmath"
)

type options struct {
	concurrency int
	logger      *linmath.Logger
	metrics     linmath.MetricsCollector
}

// Option configures a batch call.
type Option func(*options)

// WithConcurrency limits how many items are processed at the same time.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger configures the logger that receives the batch summary.
// Pass nil to disable logging.
func WithLogger(l *linmath.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring batches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &linmath.BasicMetricsCollector{}
//	out, err := batch.NormalizeAll(ctx, vs, batch.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(m linmath.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = linmath.NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = linmath.NoopMetricsCollector{}
	}
	return o
}
