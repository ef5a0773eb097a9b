/*
Package octree implements a sparse octree: a hierarchical container that
stores values at integer 3D coordinates within a cube of fixed depth.

Sparse Octrees

Octrees recursively partition a cube into eight octants. A tree of depth d
covers a cube with side length 2^d along each axis. Dense voxel storage pays
for every cell of that cube, whether occupied or not; for many applications
(volumetric data, spatial indices, procedural terrain) the overwhelming
majority of cells is empty. A sparse octree allocates internal structure only
along paths that have actually been inserted, so empty regions cost no memory
at all.

From Wikipedia:
An octree is a tree data structure in which each internal node has exactly
eight children. Octrees are most often used to partition a three-dimensional
space by recursively subdividing it into eight octants. […] Octrees are the
three-dimensional analog of quadtrees.

_________________________________________________________________________

Coordinates translate into tree paths by bit interleaving: at every level one
bit of each axis selects one of the eight children. Coordinates that share a
common high-order bit prefix are spatially near each other at coarse scale and
therefore share a common path prefix in the tree. Clients exploit this through
the NodeLoc type, a caller-held location handle which remembers the path
resolved by a previous operation. Repeated or spatially coherent access
through the same NodeLoc skips the shared prefix instead of re-walking the
tree from the root.

All tree nodes live in an arena (package octree/arena) and reference each
other by stable integer handles, never by pointer. The arena does not free
nodes, which keeps every handle valid for the lifetime of the tree and lets
location handles cache resolved paths without any risk of dangling references.

Octrees are single-writer containers. Concurrent mutation from multiple
goroutines is unsupported and must be serialized by the caller.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package octree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer traces to the global core-tracer under a name that stays visible
// inside generic declarations, where a type parameter T shadows the
// package-level T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// OctreeError is an error type for the octree module
type OctreeError string

func (e OctreeError) Error() string {
	return string(e)
}

// ErrInvalidDepth is flagged by the constructor whenever the requested tree
// depth is zero or exceeds MaxDepth.
const ErrInvalidDepth = OctreeError("invalid octree depth")

// ErrOutOfBounds is flagged whenever a coordinate component is not bounded
// by the octree's cube.
const ErrOutOfBounds = OctreeError("coordinate out of octree bounds")

// ErrNotFound is flagged by lookups when no value is stored at a coordinate.
const ErrNotFound = OctreeError("no value stored at coordinate")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = OctreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
