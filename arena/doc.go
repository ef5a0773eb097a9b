/*
Package arena provides the node store backing the sparse octree.

The arena is the single owner of all tree nodes. Nodes never reference each
other by pointer; they hold integer handles into the arena instead. This keeps
ownership strictly structural and lets clients (most importantly the location
handles of the octree package) cache resolved paths as plain handle values.

The arena never frees nodes. A handle, once returned by Allocate or
ChildOrCreate, stays valid for the whole lifetime of the arena. Deletion and
compaction are intentionally out of scope; if they become necessary, handles
will have to grow a generation tag so that cached handles can be detected as
stale.

Current status:
  - growable pointer-stable node store with int32 handles,
  - per-node child table of 8 optional handles plus an optional value,
  - child lookup and lazy child creation (ChildOrCreate),
  - value access (Value / SetValue / TakeValue),
  - strict structural invariant checker for tests (Check).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
