package dedupe

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dedupe/field"
	"github.com/hupe1980/dedupe/pager"
	"github.com/hupe1980/dedupe/rowset"
)

// Target pairs one result set with its (possibly nil) pager for a batch
// pass.
type Target struct {
	Rows  *rowset.ResultSet
	Pager pager.Pager
}

// RunRawPassAll runs the raw pass over several independent result sets,
// e.g. the attachment displays executed alongside a primary display.
//
// Each target is processed with its own seen-value state; targets share no
// mutable state, so they run concurrently. Passing a target without a
// result set returns ErrNilResultSet.
func (e *Engine) RunRawPassAll(ctx context.Context, targets []Target, fields []field.ID) error {
	for _, t := range targets {
		if t.Rows == nil {
			return ErrNilResultSet
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.RunRawPass(t.Rows, fields, t.Pager)
			return nil
		})
	}
	return g.Wait()
}
