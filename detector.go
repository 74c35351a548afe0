package dedupe

import (
	"context"

	"github.com/hupe1980/dedupe/field"
	"github.com/hupe1980/dedupe/internal/seen"
	"github.com/hupe1980/dedupe/rowset"
)

// detectRaw collects the indices of rows whose fetched value repeats a
// first-seen value on any filtered field.
//
// Per row and field, the comparison value is the direct field value, or the
// backing entity identifier when the field is absent. Absent with no
// fallback means the field is skipped for that row. Values are recorded
// even for rows already flagged, so later rows compare against the
// first-seen occurrence rather than a removed duplicate's.
func detectRaw(rs *rowset.ResultSet, fields []field.ID) *rowset.IndexSet {
	table := seen.NewTable()
	toRemove := rowset.NewIndexSet()

	for row := range rs.All() {
		for _, id := range fields {
			key, ok := comparisonKey(row, id)
			if !ok {
				continue
			}
			if table.Record(id, key) {
				toRemove.Add(row.Index())
			}
		}
	}

	return toRemove
}

// detectRendered is detectRaw over formatted output: the comparison value
// is the rendered string, there is no entity fallback, and a null render
// skips the field for that row entirely.
func detectRendered(ctx context.Context, rs *rowset.ResultSet, fields []field.ID, render RenderFunc) *rowset.IndexSet {
	table := seen.NewTable()
	toRemove := rowset.NewIndexSet()

	for row := range rs.All() {
		for _, id := range fields {
			out, ok := render(ctx, row.Index(), id)
			if !ok {
				continue
			}
			if table.Record(id, out) {
				toRemove.Add(row.Index())
			}
		}
	}

	return toRemove
}

func comparisonKey(row *rowset.Row, id field.ID) (string, bool) {
	if v, ok := row.Value(id); ok {
		return v.Key(), true
	}
	if e, ok := row.EntityID(); ok {
		return e.Key(), true
	}
	return "", false
}
