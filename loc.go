package octree

import (
	"github.com/npillmayer/octree/arena"
)

// NodeLoc is a caller-held location handle. It pairs a target coordinate
// with the portion of the octant path resolved by a previous operation, so
// that repeated access to the same or a nearby coordinate does not re-walk
// the tree from the root.
//
// A NodeLoc is created without validation; coordinates are checked against a
// tree's bounds on first use. Every insert or lookup performed through a
// NodeLoc updates its cache in place. The cache is purely a performance
// device and never changes observable behavior.
//
// A NodeLoc is bound by contract to a single octree: cached handles are only
// meaningful for the tree that resolved them. NodeLocs are not safe for
// concurrent use.
type NodeLoc struct {
	x, y, z int
	steps   []pathStep // resolved prefix of the octant path, root level first
	scratch []uint8    // reusable selector buffer for path encoding
}

// pathStep records one resolved tree level: the octant selector taken and
// the arena handle it led to.
type pathStep struct {
	sel  uint8
	node arena.Handle
}

// NewNodeLoc creates a location handle for a coordinate.
func NewNodeLoc(x, y, z int) *NodeLoc {
	return &NodeLoc{x: x, y: y, z: z}
}

// X returns the x component of the target coordinate.
func (loc *NodeLoc) X() int {
	return loc.x
}

// Y returns the y component of the target coordinate.
func (loc *NodeLoc) Y() int {
	return loc.y
}

// Z returns the z component of the target coordinate.
func (loc *NodeLoc) Z() int {
	return loc.z
}

// MoveTo retargets the location handle, keeping the cached path.
//
// The next operation through loc will reuse whatever path prefix the new
// coordinate shares with the previously resolved one. MoveTo returns loc to
// allow chaining.
func (loc *NodeLoc) MoveTo(x, y, z int) *NodeLoc {
	loc.x, loc.y, loc.z = x, y, z
	return loc
}

// resolveMode selects the traversal behavior for missing children.
type resolveMode uint8

const (
	findNode   resolveMode = iota // follow existing children only
	ensureNode                    // create missing children on the way down
)

// resolve walks the tree to the node addressed by loc's coordinate.
//
// The full octant path is recomputed and compared level by level against the
// cached path; traversal resumes below the deepest shared level. In ensure
// mode missing children are allocated, in find mode a missing child aborts
// with ErrNotFound without touching the arena. In both modes the cache is
// rewritten to the successfully resolved path.
//
// Bounds violations surface as ErrOutOfBounds before any arena access.
func (oct *Octree[T]) resolve(loc *NodeLoc, mode resolveMode) (arena.Handle, error) {
	if loc == nil {
		return arena.None, ErrIllegalArguments
	}
	sels, err := octantPath(loc.x, loc.y, loc.z, oct.depth, loc.scratch[:0])
	loc.scratch = sels
	if err != nil {
		return arena.None, err
	}

	shared := 0
	for shared < len(loc.steps) && shared < len(sels) && loc.steps[shared].sel == sels[shared] {
		shared++
	}
	loc.steps = loc.steps[:shared] // discard the cached suffix beyond the shared prefix

	node := rootHandle
	if shared > 0 {
		node = loc.steps[shared-1].node
	}
	for k := shared; k < len(sels); k++ {
		var child arena.Handle
		if mode == ensureNode {
			child, err = oct.store.ChildOrCreate(node, sels[k])
			if err != nil {
				return arena.None, err
			}
		} else {
			var ok bool
			child, ok = oct.store.Child(node, sels[k])
			if !ok {
				return arena.None, ErrNotFound
			}
		}
		loc.steps = append(loc.steps, pathStep{sel: sels[k], node: child})
		node = child
	}
	return node, nil
}
