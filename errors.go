package dedupe

import "errors"

var (
	// ErrNilResultSet is returned when a batch pass receives a target
	// without a result set.
	ErrNilResultSet = errors.New("result set must not be nil")
)
