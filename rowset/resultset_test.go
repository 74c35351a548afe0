package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSetRemove(t *testing.T) {
	t.Run("PreservesOrderAndIndices", func(t *testing.T) {
		rs := New([]*Row{
			NewRow(0), NewRow(1), NewRow(2), NewRow(3), NewRow(4),
		}, 100)

		toRemove := NewIndexSet()
		toRemove.Add(1)
		toRemove.Add(3)

		removed := rs.Remove(toRemove)
		require.Equal(t, 2, removed)
		assert.Equal(t, 3, rs.Len())
		assert.Equal(t, 98, rs.Total())

		var indices []int
		for row := range rs.All() {
			indices = append(indices, row.Index())
		}
		assert.Equal(t, []int{0, 2, 4}, indices)
	})

	t.Run("EmptySetIsNoop", func(t *testing.T) {
		rs := New([]*Row{NewRow(0), NewRow(1)}, 2)

		assert.Equal(t, 0, rs.Remove(NewIndexSet()))
		assert.Equal(t, 0, rs.Remove(nil))
		assert.Equal(t, 2, rs.Len())
		assert.Equal(t, 2, rs.Total())
	})

	t.Run("IndicesNotPresentAreIgnored", func(t *testing.T) {
		rs := New([]*Row{NewRow(0), NewRow(1)}, 2)

		toRemove := NewIndexSet()
		toRemove.Add(1)
		toRemove.Add(7)

		assert.Equal(t, 1, rs.Remove(toRemove))
		assert.Equal(t, 1, rs.Len())
		assert.Equal(t, 1, rs.Total())
	})

	t.Run("NegativeTotalDefaultsToRowCount", func(t *testing.T) {
		rs := New([]*Row{NewRow(0), NewRow(1), NewRow(2)}, -1)
		assert.Equal(t, 3, rs.Total())
	})
}

func TestRowFieldStates(t *testing.T) {
	row := NewRow(0).
		Set("name", String("A")).
		Set("deleted", Null()).
		WithEntity(Int(17))

	v, ok := row.Value("name")
	require.True(t, ok)
	assert.Equal(t, "A", v.StringValue())

	// Null is a present value, distinct from an absent field.
	v, ok = row.Value("deleted")
	require.True(t, ok)
	assert.Equal(t, KindNull, v.Kind)

	_, ok = row.Value("missing")
	assert.False(t, ok)

	e, ok := row.EntityID()
	require.True(t, ok)
	assert.Equal(t, Int(17).Key(), e.Key())

	_, ok = NewRow(1).EntityID()
	assert.False(t, ok)
}

func TestIndexSet(t *testing.T) {
	s := NewIndexSet()
	assert.True(t, s.IsEmpty())

	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Add(-1) // ignored

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Contains(-1))

	var got []int
	for i := range s.Iterator() {
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3}, got)
}
