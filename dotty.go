package octree

import (
	"fmt"
	"io"

	"github.com/npillmayer/octree/arena"
)

// each visits all allocated nodes in depth-first pre-order.
//
// The callback receives the node's handle, the handle of its parent (None
// for the root), the octant selector that leads to it from its parent and
// its depth below the root. Iteration stops at the first callback error and
// returns that error.
func (oct *Octree[T]) each(f func(h, parent arena.Handle, selector uint8, depth int) error) error {
	var walk func(h, parent arena.Handle, selector uint8, depth int) error
	walk = func(h, parent arena.Handle, selector uint8, depth int) error {
		if err := f(h, parent, selector, depth); err != nil {
			return err
		}
		for sel := uint8(0); sel < arena.Degree; sel++ {
			child, ok := oct.store.Child(h, sel)
			if !ok {
				continue
			}
			if err := walk(child, h, sel, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(rootHandle, arena.None, 0, 0)
}

// Octree2Dot outputs the internal structure of an Octree in Graphviz DOT format
// (for debugging purposes).
func Octree2Dot[T comparable](oct *Octree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	err := oct.each(func(h, parent arena.Handle, selector uint8, depth int) error {
		node := oct.store.Node(h)
		if value, ok := node.Value(); ok {
			label := fmt.Sprintf("#%d @%d\\n“%v”", h, depth, value)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", h, label, nodeDotStyles(true))
		} else {
			nodelist += fmt.Sprintf("\"%d\" [label=%d %s];\n", h, h, nodeDotStyles(false))
		}
		if parent != arena.None {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=%d];\n", parent, h, selector)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("octree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(hasValue bool) string {
	s := ",style=filled"
	if hasValue {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
