package dedupe

import (
	"context"
	"time"

	"github.com/hupe1980/dedupe/field"
	"github.com/hupe1980/dedupe/pager"
	"github.com/hupe1980/dedupe/rowset"
)

// RenderFunc produces the formatted output for a field on a row, addressed
// by the row's original positional index. ok=false means the field renders
// to no output for that row, which exempts the row from comparison on that
// field.
//
// Rendering may perform I/O in the surrounding pipeline, hence the context.
type RenderFunc func(ctx context.Context, rowIndex int, fieldID field.ID) (value string, ok bool)

// Engine runs the two duplicate-filter passes over result sets.
//
// An Engine is stateless between calls and safe for concurrent use as long
// as each call operates on its own result set; all per-pass state is local
// to the call.
type Engine struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// BuildPlan resolves the per-field settings for one query execution and
// returns the filter plan consumed by both passes.
//
// Settings that cannot be resolved degrade to the built-in default
// (disabled) and are logged; plan construction never fails.
func (e *Engine) BuildPlan(defs []field.Definition, src field.SettingsSource, displayID string) field.Plan {
	plan, err := field.BuildPlan(defs, src, displayID)
	e.logger.LogPlan(context.Background(), displayID, len(plan.Raw), len(plan.Rendered), err)
	e.metrics.RecordPlan(len(plan.Raw), len(plan.Rendered))
	return plan
}

// RunRawPass removes duplicate rows by fetched value. It is invoked once
// after query execution, before any rendering. fields is the Raw list of
// the plan. pg may be nil when pagination is inactive.
//
// Returns the number of rows removed.
func (e *Engine) RunRawPass(rs *rowset.ResultSet, fields []field.ID, pg pager.Pager) int {
	if rs == nil || len(fields) == 0 {
		return 0
	}

	start := time.Now()
	rows := rs.Len()

	toRemove := detectRaw(rs, fields)
	removed := rs.Remove(toRemove)
	pager.Reconcile(pg, rs.Total())

	e.metrics.RecordPass(PhaseRaw, rows, removed, time.Since(start))
	e.logger.LogPass(context.Background(), PhaseRaw, rows, removed)
	return removed
}

// RunRenderedPass removes duplicate rows by formatted output. It is invoked
// once after rendering is available, immediately before final output
// assembly, against whatever result set the raw pass left. fields is the
// Rendered list of the plan. pg may be nil when pagination is inactive.
//
// Returns the number of rows removed.
func (e *Engine) RunRenderedPass(ctx context.Context, rs *rowset.ResultSet, fields []field.ID, render RenderFunc, pg pager.Pager) int {
	if rs == nil || len(fields) == 0 || render == nil {
		return 0
	}

	start := time.Now()
	rows := rs.Len()

	toRemove := detectRendered(ctx, rs, fields, render)
	removed := rs.Remove(toRemove)
	pager.Reconcile(pg, rs.Total())

	e.metrics.RecordPass(PhaseRendered, rows, removed, time.Since(start))
	e.logger.LogPass(ctx, PhaseRendered, rows, removed)
	return removed
}
