package arena

import "fmt"

// Check validates structural invariants of the tree rooted at root.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving. It verifies that
//   - every reachable handle is valid,
//   - every node is reachable through exactly one parent (no sharing, no cycles),
//   - no node lives below maxDepth levels from the root,
//   - values are stored at depth maxDepth only (true leaf positions),
//   - the arena holds no unreachable nodes.
func (a *Arena[T]) Check(root Handle, maxDepth int) error {
	if !a.Valid(root) {
		return fmt.Errorf("%w: invalid root handle %d", ErrInvalidStructure, root)
	}
	if maxDepth < 1 {
		return fmt.Errorf("%w: max depth must be positive", ErrInvalidStructure)
	}
	seen := make(map[Handle]bool, len(a.nodes))
	if err := a.checkNode(root, 0, maxDepth, seen); err != nil {
		return err
	}
	if len(seen) != len(a.nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable from root",
			ErrInvalidStructure, len(a.nodes)-len(seen), len(a.nodes))
	}
	return nil
}

func (a *Arena[T]) checkNode(h Handle, depth, maxDepth int, seen map[Handle]bool) error {
	if !a.Valid(h) {
		return fmt.Errorf("%w: invalid handle %d at depth %d", ErrInvalidStructure, h, depth)
	}
	if seen[h] {
		return fmt.Errorf("%w: node %d reachable through more than one path", ErrInvalidStructure, h)
	}
	seen[h] = true
	node := a.nodes[h]
	if depth > maxDepth {
		return fmt.Errorf("%w: node %d below max depth %d", ErrInvalidStructure, h, maxDepth)
	}
	if node.occupied && depth != maxDepth {
		return fmt.Errorf("%w: routing node %d at depth %d holds a value",
			ErrInvalidStructure, h, depth)
	}
	if depth == maxDepth && !node.IsLeaf() {
		return fmt.Errorf("%w: node %d at max depth has children", ErrInvalidStructure, h)
	}
	for sel, child := range node.children {
		if child == None {
			continue
		}
		if err := a.checkNode(child, depth+1, maxDepth, seen); err != nil {
			return fmt.Errorf("%w (via octant %d of node %d)", err, sel, h)
		}
	}
	return nil
}
