package rrcf

import "errors"

// Error kinds returned by tree operations. Returned errors wrap one of
// these sentinels with context; match them with errors.Is.
var (
	// ErrNotFound is returned when a leaf index is not present in the tree.
	ErrNotFound = errors.New("rrcf: leaf not found")

	// ErrDuplicateIndex is returned by InsertPoint when the index is
	// already assigned to a leaf.
	ErrDuplicateIndex = errors.New("rrcf: duplicate leaf index")

	// ErrInvalidOperation is returned for operations that are undefined on
	// the current tree, such as forgetting the only remaining leaf or
	// passing a point of the wrong dimensionality.
	ErrInvalidOperation = errors.New("rrcf: invalid operation")

	// ErrInvariant indicates an internal invariant was violated, e.g. a
	// cut dimension could not be resolved from the cumulative spans. It
	// should never be observed.
	ErrInvariant = errors.New("rrcf: invariant violation")
)
