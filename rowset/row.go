package rowset

import "github.com/hupe1980/dedupe/field"

// Row is one row of a result page: a mapping from field id to fetched value,
// an optional backing entity identifier, and the row's positional index
// within the page.
//
// A field on a row is in one of three states: it has a direct value (which
// may be null), it is absent but the row carries a backing entity whose
// identifier stands in for comparison, or it is absent with no fallback.
type Row struct {
	index  int
	values map[field.ID]Value
	entity Value
}

// NewRow creates a row at the given positional index.
func NewRow(index int) *Row {
	return &Row{
		index:  index,
		values: make(map[field.ID]Value),
	}
}

// Index returns the row's positional index within the page. Indices are
// assigned by the query pipeline and survive removal of other rows.
func (r *Row) Index() int {
	return r.index
}

// Set records a direct value for a field and returns the row for chaining.
func (r *Row) Set(id field.ID, v Value) *Row {
	r.values[id] = v
	return r
}

// WithEntity attaches the backing entity's stable identifier and returns
// the row for chaining.
func (r *Row) WithEntity(id Value) *Row {
	r.entity = id
	return r
}

// Value returns the direct value for a field, if the row has one.
func (r *Row) Value(id field.ID) (Value, bool) {
	v, ok := r.values[id]
	return v, ok
}

// EntityID returns the backing entity identifier, if the row carries one.
func (r *Row) EntityID() (Value, bool) {
	return r.entity, r.entity.IsValid()
}
