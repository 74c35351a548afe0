package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s, err := NewState(10, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, s.PageSize())
	assert.Equal(t, 100, s.TotalItems())
	assert.Equal(t, 10, s.TotalPages())

	_, err = NewState(0, 100)
	require.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestReconcile(t *testing.T) {
	t.Run("NilPagerIsNoop", func(t *testing.T) {
		Reconcile(nil, 42)
	})

	t.Run("ApproximationIsKept", func(t *testing.T) {
		// Page size 10, 100 items, first page loses 9 duplicates. The
		// corrected total is 91, which still rounds up to 10 pages: the
		// filter cannot see duplicates on unfetched pages, so the page
		// count stays an overestimate. Assert the documented value.
		s, err := NewState(10, 100)
		require.NoError(t, err)

		Reconcile(s, 91)
		assert.Equal(t, 91, s.TotalItems())
		assert.Equal(t, 10, s.TotalPages())
	})

	t.Run("PageBoundaryShrinks", func(t *testing.T) {
		s, err := NewState(10, 100)
		require.NoError(t, err)

		Reconcile(s, 90)
		assert.Equal(t, 9, s.TotalPages())

		Reconcile(s, 0)
		assert.Equal(t, 0, s.TotalPages())
	})

	t.Run("NegativeTotalClampsToZero", func(t *testing.T) {
		s, err := NewState(10, 100)
		require.NoError(t, err)

		Reconcile(s, -5)
		assert.Equal(t, 0, s.TotalItems())
		assert.Equal(t, 0, s.TotalPages())
	})
}
