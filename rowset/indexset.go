package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is a set of row indices, used to carry removal decisions from
// the detector to the mutation step. It wraps a Roaring Bitmap.
type IndexSet struct {
	rb *roaring.Bitmap
}

// NewIndexSet creates a new empty index set.
func NewIndexSet() *IndexSet {
	return &IndexSet{
		rb: roaring.New(),
	}
}

// Add adds a row index to the set. Negative indices are ignored.
func (s *IndexSet) Add(index int) {
	if index < 0 {
		return
	}
	s.rb.Add(uint32(index))
}

// Contains checks if a row index is in the set.
func (s *IndexSet) Contains(index int) bool {
	if index < 0 {
		return false
	}
	return s.rb.Contains(uint32(index))
}

// IsEmpty returns true if the set is empty.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of indices in the set.
func (s *IndexSet) Len() int {
	return int(s.rb.GetCardinality())
}

// Iterator returns an iterator over the set in ascending index order.
func (s *IndexSet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
