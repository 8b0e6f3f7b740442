package linmath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordBatch("transform", 10, 0, 2*time.Millisecond)
	m.RecordBatch("normalize", 4, 1, 4*time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(14), stats.BatchItems)
	assert.Equal(t, int64(1), stats.BatchFailed)
	assert.Equal(t, int64(1), stats.BatchErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.BatchAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() { m.RecordBatch("map", 1, 0, time.Second) })
}
