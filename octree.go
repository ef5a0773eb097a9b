package octree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/guiguan/caster"

	"github.com/npillmayer/octree/arena"
)

// rootHandle is the arena handle of the root node. The root is the first
// node an octree allocates, so it always sits at handle 0.
const rootHandle arena.Handle = 0

// Octree stores values of type T at integer 3D coordinates within a cube of
// side length 2^depth, allocating nodes only along inserted paths.
//
// An octree created by
//
//	octree.New[byte](16)
//
// covers the cube [0, 65536) per axis. Values must be comparable; they are
// stored by value and overwritten without any destructor semantics.
//
// Due to their internal structure octrees do have performance characteristics
// differing from dense 3D arrays.
//
//	Operation     |   Sparse octree  |  Dense array
//	--------------+------------------+-------------
//	Insert        |   O(depth)       |   O(1)
//	Lookup        |   O(depth)       |   O(1)
//	Memory        |   O(values)      |   O(8^depth)
//
// Lookup and insert through a warm NodeLoc cost O(depth - shared), where
// shared is the path prefix length the new coordinate has in common with the
// previously resolved one.
//
// An Octree is intended for exclusive ownership by one logical owner;
// concurrent mutation is unsupported and must be serialized by the caller.
type Octree[T comparable] struct {
	depth int
	count int // number of stored values
	store *arena.Arena[T]
	cast  *caster.Caster // broadcaster for mutation events, nil until Watch
}

// New creates an octree of the given depth. The tree covers coordinates in
// [0, 2^depth) along each axis.
//
// Depth must lie in [1, MaxDepth]; anything else is flagged as
// ErrInvalidDepth.
func New[T comparable](depth int) (*Octree[T], error) {
	if depth < 1 || depth > MaxDepth {
		return nil, ErrInvalidDepth
	}
	store := arena.New[T]()
	root, err := store.Allocate()
	assert(err == nil, "octree.New: cannot allocate root node")
	assert(root == rootHandle, "octree.New: root node not at handle 0")
	return &Octree[T]{
		depth: depth,
		store: store,
	}, nil
}

// Depth returns the fixed tree depth.
func (oct *Octree[T]) Depth() int {
	return oct.depth
}

// Dimension returns the cube side length, 2^depth.
func (oct *Octree[T]) Dimension() int {
	return 1 << oct.depth
}

// Len returns the number of values stored in the tree.
func (oct *Octree[T]) Len() int {
	return oct.count
}

// NodeCount returns the number of allocated tree nodes, including routing
// nodes that do not store a value.
func (oct *Octree[T]) NodeCount() int {
	return oct.store.Len()
}

// Insert stores a value at loc's coordinate, overwriting any prior value
// unconditionally.
//
// Missing nodes along the coordinate's path are allocated on the way down.
// An out-of-bounds coordinate is flagged as ErrOutOfBounds before the tree
// is touched.
func (oct *Octree[T]) Insert(loc *NodeLoc, value T) error {
	node, err := oct.resolve(loc, ensureNode)
	if err != nil {
		return err
	}
	if !oct.store.Node(node).HasValue() {
		oct.count++
	}
	oct.store.SetValue(node, value)
	oct.publish(EventInsert, loc, value)
	return nil
}

// Replace stores a value at loc's coordinate only if the prior value, if
// any, equals expected. It reports whether the value was written.
//
// Routing nodes allocated on the way down are kept even when the write is
// refused; they carry no value and will be reused by a later insert.
func (oct *Octree[T]) Replace(loc *NodeLoc, expected T, value T) (bool, error) {
	node, err := oct.resolve(loc, ensureNode)
	if err != nil {
		return false, err
	}
	if prior, ok := oct.store.Value(node); ok {
		if prior != expected {
			return false, nil
		}
	} else {
		oct.count++
	}
	oct.store.SetValue(node, value)
	oct.publish(EventInsert, loc, value)
	return true, nil
}

// At returns the value stored at loc's coordinate.
//
// A coordinate whose path is incomplete or whose leaf holds no value is
// flagged as ErrNotFound; the tree is not mutated.
func (oct *Octree[T]) At(loc *NodeLoc) (T, error) {
	var zero T
	node, err := oct.resolve(loc, findNode)
	if err != nil {
		return zero, err
	}
	value, ok := oct.store.Value(node)
	if !ok {
		return zero, ErrNotFound
	}
	return value, nil
}

// Contains reports whether the value stored at loc's coordinate equals
// expected. It returns false both when the stored value differs and when no
// value is stored, including for out-of-bounds coordinates.
func (oct *Octree[T]) Contains(loc *NodeLoc, expected T) bool {
	value, err := oct.At(loc)
	if err != nil {
		return false
	}
	return value == expected
}

// Take removes and returns the value stored at loc's coordinate.
//
// Routing nodes along the path are kept; the arena never frees nodes. An
// absent value is flagged as ErrNotFound.
func (oct *Octree[T]) Take(loc *NodeLoc) (T, error) {
	var zero T
	node, err := oct.resolve(loc, findNode)
	if err != nil {
		return zero, err
	}
	value, ok := oct.store.TakeValue(node)
	if !ok {
		return zero, ErrNotFound
	}
	oct.count--
	oct.publish(EventDelete, loc, value)
	return value, nil
}

// Delete clears any value stored at loc's coordinate. Deleting an empty
// coordinate is a no-op; only ErrOutOfBounds is possible.
func (oct *Octree[T]) Delete(loc *NodeLoc) error {
	_, err := oct.Take(loc)
	if err == ErrNotFound {
		return nil
	}
	return err
}
