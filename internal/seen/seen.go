// Package seen tracks first-seen comparison values per filtered field for
// one detector pass. A table is built fresh per pass and discarded after.
package seen

import "github.com/hupe1980/dedupe/field"

// Table maps each filtered field to the set of comparison keys observed so
// far during one pass over one result set.
type Table struct {
	byField map[field.ID]map[string]struct{}
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byField: make(map[field.ID]map[string]struct{}),
	}
}

// Record reports whether key was already observed for the field, and
// records it. Recording is unconditional: even when the current row is
// already flagged for removal, later rows must still compare against the
// first-seen value.
func (t *Table) Record(id field.ID, key string) bool {
	keys, ok := t.byField[id]
	if !ok {
		keys = make(map[string]struct{})
		t.byField[id] = keys
	}
	if _, dup := keys[key]; dup {
		return true
	}
	keys[key] = struct{}{}
	return false
}
