package linmath

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    batchCounter   *prometheus.CounterVec
//	    batchHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordBatch(op string, count, failed int, d time.Duration) {
//	    p.batchCounter.WithLabelValues(op).Inc()
//	    p.batchHistogram.WithLabelValues(op).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordBatch is called after each batch of operations.
	// count is the number of items submitted, failed is the number that did
	// not complete successfully, duration is the total time taken.
	RecordBatch(op string, count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(string, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchFailed     atomic.Int64
	BatchErrors     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if failed > 0 {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchFailed:   b.BatchFailed.Load(),
		BatchErrors:   b.BatchErrors.Load(),
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
	BatchItems    int64
	BatchFailed   int64
	BatchErrors   int64
	BatchAvgNanos int64
}
