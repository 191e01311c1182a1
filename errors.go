package ordered

import "errors"

var (
	// ErrNotFound signals a lookup of a key which is not present in a container,
	// or asking an empty container for its minimum or maximum.
	ErrNotFound = errors.New("ordered: not found")
	// ErrInvariant signals a container whose tree violates ordering or balance.
	// It is returned by Check and indicates a defect, never a user condition.
	ErrInvariant = errors.New("ordered: invariant violated")
)
