package octree

// MaxDepth is the maximum supported tree depth.
//
// The cap keeps interleaved coordinate bits comfortably within 64 bits; it is
// an implementation choice, not a property of the data structure.
const MaxDepth = 21

// octantPath encodes a coordinate as a root-to-leaf sequence of octant
// selectors, one 3-bit selector per level.
//
// Selector k is formed from bit (depth-1-k) of each axis, packed as
// (bitX<<2)|(bitY<<1)|bitZ. Most significant bits come first, so coordinates
// sharing a high-order bit prefix share a path prefix. This is the property
// the NodeLoc cache exploits.
//
// The path is appended to buf, which may be nil. Bounds violations are
// reported before any selector is produced.
func octantPath(x, y, z int, depth int, buf []uint8) ([]uint8, error) {
	assert(depth >= 1 && depth <= MaxDepth, "octantPath called with invalid depth")
	if err := checkBounds(x, y, z, depth); err != nil {
		return buf, err
	}
	for k := depth - 1; k >= 0; k-- {
		sel := uint8(x>>k&1)<<2 | uint8(y>>k&1)<<1 | uint8(z>>k&1)
		buf = append(buf, sel)
	}
	return buf, nil
}

// checkBounds validates that every axis component lies in [0, 2^depth).
func checkBounds(x, y, z int, depth int) error {
	limit := 1 << depth
	if x < 0 || x >= limit {
		return ErrOutOfBounds
	}
	if y < 0 || y >= limit {
		return ErrOutOfBounds
	}
	if z < 0 || z >= limit {
		return ErrOutOfBounds
	}
	return nil
}
