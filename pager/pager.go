// Package pager reconciles pagination metadata after duplicate removal.
//
// Reconciliation is deliberately approximate: the filter only sees fetched
// pages, so it cannot know how many duplicates remain on unfetched ones.
// The corrected page count may therefore stay an overestimate. That is an
// accepted property of the feature, not a bug to paper over.
package pager

import "errors"

// ErrInvalidPageSize is returned when a pager is constructed with a
// non-positive page size.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Pager is the pagination handle exposed by the surrounding pipeline.
// A nil Pager means pagination is not active.
type Pager interface {
	// Active reports whether pagination applies to the current execution.
	Active() bool

	// SetTotalItems overwrites the pager's total-item count.
	SetTotalItems(total int)

	// Recompute rebuilds derived page boundaries from the current
	// total-item count.
	Recompute()
}

// State is a concrete Pager with ceiling-division page boundaries.
type State struct {
	pageSize   int
	totalItems int
	totalPages int
}

// NewState creates pager state for the given page size and total-item
// count.
func NewState(pageSize, totalItems int) (*State, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	s := &State{
		pageSize:   pageSize,
		totalItems: totalItems,
	}
	s.Recompute()
	return s, nil
}

// Active implements Pager. State is always active once constructed.
func (s *State) Active() bool {
	return true
}

// PageSize returns the configured page size.
func (s *State) PageSize() int {
	return s.pageSize
}

// TotalItems returns the current total-item count.
func (s *State) TotalItems() int {
	return s.totalItems
}

// TotalPages returns the page count derived from the last Recompute.
func (s *State) TotalPages() int {
	return s.totalPages
}

// SetTotalItems implements Pager. Negative totals clamp to zero.
func (s *State) SetTotalItems(total int) {
	if total < 0 {
		total = 0
	}
	s.totalItems = total
}

// Recompute implements Pager.
func (s *State) Recompute() {
	s.totalPages = (s.totalItems + s.pageSize - 1) / s.pageSize
}

// Reconcile applies a post-removal total to the pager and recomputes page
// boundaries. It is a no-op when p is nil or pagination is inactive.
func Reconcile(p Pager, newTotal int) {
	if p == nil || !p.Active() {
		return
	}
	p.SetTotalItems(newTotal)
	p.Recompute()
}
