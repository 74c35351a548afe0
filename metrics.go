package dedupe

import (
	"sync/atomic"
	"time"
)

// Phase names one of the two detection passes.
type Phase string

const (
	// PhaseRaw is the pass over fetched values, before output formatting.
	PhaseRaw Phase = "raw"
	// PhaseRendered is the pass over formatted output.
	PhaseRendered Phase = "rendered"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    passCounter      prometheus.CounterVec
//	    removedHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPass(phase dedupe.Phase, rows, removed int, duration time.Duration) {
//	    p.passCounter.WithLabelValues(string(phase)).Inc()
//	    // ... record removals, duration, etc.
//	}
type MetricsCollector interface {
	// RecordPlan is called after each filter-plan construction.
	// rawFields and renderedFields are the sizes of the two plan lists.
	RecordPlan(rawFields, renderedFields int)

	// RecordPass is called after each detection pass.
	// rows is the number of rows inspected, removed the number of rows
	// dropped, duration the total time taken including mutation.
	RecordPass(phase Phase, rows, removed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPlan(int, int)                       {}
func (NoopMetricsCollector) RecordPass(Phase, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PlanCount          atomic.Int64
	RawPassCount       atomic.Int64
	RawRows            atomic.Int64
	RawRemoved         atomic.Int64
	RawTotalNanos      atomic.Int64
	RenderedPassCount  atomic.Int64
	RenderedRows       atomic.Int64
	RenderedRemoved    atomic.Int64
	RenderedTotalNanos atomic.Int64
}

// RecordPlan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPlan(rawFields, renderedFields int) {
	b.PlanCount.Add(1)
}

// RecordPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPass(phase Phase, rows, removed int, duration time.Duration) {
	switch phase {
	case PhaseRaw:
		b.RawPassCount.Add(1)
		b.RawRows.Add(int64(rows))
		b.RawRemoved.Add(int64(removed))
		b.RawTotalNanos.Add(duration.Nanoseconds())
	case PhaseRendered:
		b.RenderedPassCount.Add(1)
		b.RenderedRows.Add(int64(rows))
		b.RenderedRemoved.Add(int64(removed))
		b.RenderedTotalNanos.Add(duration.Nanoseconds())
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	PlanCount         int64
	RawPassCount      int64
	RawRows           int64
	RawRemoved        int64
	RawAvgNanos       int64
	RenderedPassCount int64
	RenderedRows      int64
	RenderedRemoved   int64
	RenderedAvgNanos  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PlanCount:         b.PlanCount.Load(),
		RawPassCount:      b.RawPassCount.Load(),
		RawRows:           b.RawRows.Load(),
		RawRemoved:        b.RawRemoved.Load(),
		RawAvgNanos:       avgNanos(&b.RawTotalNanos, &b.RawPassCount),
		RenderedPassCount: b.RenderedPassCount.Load(),
		RenderedRows:      b.RenderedRows.Load(),
		RenderedRemoved:   b.RenderedRemoved.Load(),
		RenderedAvgNanos:  avgNanos(&b.RenderedTotalNanos, &b.RenderedPassCount),
	}
}

func avgNanos(total, count *atomic.Int64) int64 {
	c := count.Load()
	if c == 0 {
		return 0
	}
	return total.Load() / c
}
