package rowset

import "iter"

// ResultSet is the ordered collection of rows for one page of one query
// execution, together with the pipeline's running total-row count (which
// spans all pages, not just the fetched one).
//
// Removal mutates the collection in place and never renumbers surviving
// rows.
type ResultSet struct {
	rows  []*Row
	total int
}

// New creates a ResultSet over the given rows with the given running total.
// If total is negative, it is taken to be the number of rows.
func New(rows []*Row, total int) *ResultSet {
	if total < 0 {
		total = len(rows)
	}
	return &ResultSet{
		rows:  rows,
		total: total,
	}
}

// Len returns the number of rows currently in the set.
func (rs *ResultSet) Len() int {
	return len(rs.rows)
}

// Total returns the running total-row count.
func (rs *ResultSet) Total() int {
	return rs.total
}

// All returns an iterator over the surviving rows in result order.
func (rs *ResultSet) All() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for _, row := range rs.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Rows returns the surviving rows in result order. The returned slice is a
// copy; the rows themselves are shared.
func (rs *ResultSet) Rows() []*Row {
	out := make([]*Row, len(rs.rows))
	copy(out, rs.rows)
	return out
}

// Remove drops every row whose positional index is in toRemove, decrements
// the running total by the number of rows dropped, and returns that number.
// Surviving rows keep their order and their original indices.
func (rs *ResultSet) Remove(toRemove *IndexSet) int {
	if toRemove == nil || toRemove.IsEmpty() {
		return 0
	}

	kept := rs.rows[:0]
	removed := 0
	for _, row := range rs.rows {
		if toRemove.Contains(row.Index()) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	for i := len(kept); i < len(rs.rows); i++ {
		rs.rows[i] = nil
	}
	rs.rows = kept
	rs.total -= removed
	return removed
}
