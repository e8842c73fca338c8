package rowsel

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordForEach is called after each chunked for-each run.
	// chunks is 0 for an empty range and 1 for the sequential path.
	RecordForEach(length, chunks int, parallel bool, duration time.Duration, err error)

	// RecordMaterialize is called after each mask materialization.
	// contiguous reports whether the result was a range.
	RecordMaterialize(length, selected int, contiguous bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordForEach(int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordMaterialize(int, int, bool, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ForEachCount      atomic.Int64
	ForEachParallel   atomic.Int64
	ForEachChunks     atomic.Int64
	ForEachIndices    atomic.Int64
	ForEachErrors     atomic.Int64
	ForEachTotalNanos atomic.Int64

	MaterializeCount      atomic.Int64
	MaterializeRanges     atomic.Int64
	MaterializeSelected   atomic.Int64
	MaterializeTotalNanos atomic.Int64
}

// RecordForEach implements MetricsCollector.
func (b *BasicMetricsCollector) RecordForEach(length, chunks int, parallel bool, duration time.Duration, err error) {
	b.ForEachCount.Add(1)
	b.ForEachChunks.Add(int64(chunks))
	b.ForEachIndices.Add(int64(length))
	b.ForEachTotalNanos.Add(duration.Nanoseconds())
	if parallel {
		b.ForEachParallel.Add(1)
	}
	if err != nil {
		b.ForEachErrors.Add(1)
	}
}

// RecordMaterialize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMaterialize(length, selected int, contiguous bool, duration time.Duration) {
	b.MaterializeCount.Add(1)
	b.MaterializeSelected.Add(int64(selected))
	b.MaterializeTotalNanos.Add(duration.Nanoseconds())
	if contiguous {
		b.MaterializeRanges.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ForEachCount:        b.ForEachCount.Load(),
		ForEachParallel:     b.ForEachParallel.Load(),
		ForEachChunks:       b.ForEachChunks.Load(),
		ForEachIndices:      b.ForEachIndices.Load(),
		ForEachErrors:       b.ForEachErrors.Load(),
		ForEachAvgNanos:     avg(b.ForEachTotalNanos.Load(), b.ForEachCount.Load()),
		MaterializeCount:    b.MaterializeCount.Load(),
		MaterializeRanges:   b.MaterializeRanges.Load(),
		MaterializeSelected: b.MaterializeSelected.Load(),
		MaterializeAvgNanos: avg(b.MaterializeTotalNanos.Load(), b.MaterializeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ForEachCount        int64
	ForEachParallel     int64
	ForEachChunks       int64
	ForEachIndices      int64
	ForEachErrors       int64
	ForEachAvgNanos     int64
	MaterializeCount    int64
	MaterializeRanges   int64
	MaterializeSelected int64
	MaterializeAvgNanos int64
}
