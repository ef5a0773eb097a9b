package arena

import (
	"fmt"
	"math"
)

// Handle identifies a node within an arena. Handles are stable: the arena
// never frees nodes, so a handle stays valid for the arena's whole lifetime.
type Handle int32

// None is the empty child slot marker.
const None Handle = -1

// Degree is the fanout of octree nodes: one child per octant.
const Degree = 8

// Node is a single octree node. A node holds up to 8 optional child handles
// and, if it has been the target of an insert, a value.
//
// Nodes are created through the owning arena and must not be constructed
// directly.
type Node[T any] struct {
	children [Degree]Handle
	value    T
	occupied bool
}

// Child returns the child handle at an octant selector, or None.
func (n *Node[T]) Child(selector uint8) Handle {
	assert(selector < Degree, "octant selector out of range")
	return n.children[selector]
}

// HasValue reports whether the node stores a value.
func (n *Node[T]) HasValue() bool {
	return n.occupied
}

// Value returns the stored value, if any.
func (n *Node[T]) Value() (T, bool) {
	return n.value, n.occupied
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	for _, ch := range n.children {
		if ch != None {
			return false
		}
	}
	return true
}

// Arena is a growable store of octree nodes, indexed by integer handles.
//
// The zero value is not usable; create arenas with New.
type Arena[T any] struct {
	nodes []*Node[T]
}

// New creates an empty arena. No node is allocated yet; the owning tree
// allocates its root explicitly so that the root always ends up at handle 0.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Len returns the number of allocated nodes.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// Valid reports whether h refers to an allocated node.
func (a *Arena[T]) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.nodes)
}

// Allocate creates a fresh empty node and returns its handle.
//
// Exhaustion of the handle space is reported as ErrArenaFull; the arena is
// left unchanged in that case.
func (a *Arena[T]) Allocate() (Handle, error) {
	if len(a.nodes) >= math.MaxInt32 {
		return None, fmt.Errorf("%w: %d nodes allocated", ErrArenaFull, len(a.nodes))
	}
	node := &Node[T]{}
	for i := range node.children {
		node.children[i] = None
	}
	a.nodes = append(a.nodes, node)
	return Handle(len(a.nodes) - 1), nil
}

// Node returns the node for a handle.
//
// Node pointers stay valid across later allocations, but clients should
// prefer handles for anything they keep around.
func (a *Arena[T]) Node(h Handle) *Node[T] {
	assert(a.Valid(h), "node handle out of range")
	return a.nodes[h]
}

// Child returns the child handle of node h at an octant selector.
//
// ok is false when the child slot is empty.
func (a *Arena[T]) Child(h Handle, selector uint8) (Handle, bool) {
	child := a.Node(h).Child(selector)
	return child, child != None
}

// ChildOrCreate returns the existing child of node h at an octant selector,
// or allocates a new node, links it into the parent's slot and returns it.
func (a *Arena[T]) ChildOrCreate(h Handle, selector uint8) (Handle, error) {
	if !a.Valid(h) {
		return None, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	if selector >= Degree {
		return None, fmt.Errorf("%w: %d", ErrInvalidSelector, selector)
	}
	node := a.nodes[h]
	if child := node.children[selector]; child != None {
		return child, nil
	}
	child, err := a.Allocate()
	if err != nil {
		return None, err
	}
	node.children[selector] = child
	return child, nil
}

// SetValue stores a value in node h, overwriting any prior value.
func (a *Arena[T]) SetValue(h Handle, value T) {
	node := a.Node(h)
	node.value = value
	node.occupied = true
}

// Value returns the value stored in node h, if any.
func (a *Arena[T]) Value(h Handle) (T, bool) {
	return a.Node(h).Value()
}

// TakeValue removes and returns the value stored in node h.
//
// ok is false when the node held no value; the node itself is never removed.
func (a *Arena[T]) TakeValue(h Handle) (T, bool) {
	node := a.Node(h)
	value, ok := node.value, node.occupied
	var zero T
	node.value = zero
	node.occupied = false
	return value, ok
}
