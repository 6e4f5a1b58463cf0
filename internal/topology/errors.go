package topology

import "errors"

var (
	// ErrMissingEmptySet indicates the open-set family does not contain ∅.
	ErrMissingEmptySet = errors.New("topology: empty set is not open")
	// ErrMissingUniverse indicates the open-set family does not contain the universe.
	ErrMissingUniverse = errors.New("topology: universe is not open")
	// ErrNotInUniverse indicates an open set contains a point outside the universe.
	ErrNotInUniverse = errors.New("topology: open set is not a subset of the universe")
	// ErrUnionNotClosed indicates the family is not closed under union.
	ErrUnionNotClosed = errors.New("topology: family is not closed under union")
	// ErrIntersectionNotClosed indicates the family is not closed under finite intersection.
	ErrIntersectionNotClosed = errors.New("topology: family is not closed under intersection")
)
