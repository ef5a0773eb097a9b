package arena

import "errors"

var (
	// ErrInvalidHandle signals a handle that does not refer to an allocated node.
	ErrInvalidHandle = errors.New("arena: invalid node handle")
	// ErrInvalidSelector signals an octant selector outside 0…7.
	ErrInvalidSelector = errors.New("arena: invalid octant selector")
	// ErrArenaFull signals that the handle space is exhausted.
	ErrArenaFull = errors.New("arena: node capacity exhausted")
	// ErrInvalidStructure signals a violated structural invariant.
	ErrInvalidStructure = errors.New("arena: invalid tree structure")
)
