package octree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/octree/arena"
)

// DumpTree prints an indented rendering of the tree structure to w (for
// debugging purposes).
//
// Routing nodes print as their octant selector, value nodes additionally
// print the stored value. Node depth is visualized by indentation and a
// per-level color. Lines are clipped to the current terminal width when
// stdout is interactive.
func DumpTree[T comparable](oct *Octree[T], w io.Writer) {
	width := lineWidthFromTerminal()
	palette := makeDepthPalette()
	err := oct.each(func(h, parent arena.Handle, selector uint8, depth int) error {
		var line string
		if value, ok := oct.store.Node(h).Value(); ok {
			line = fmt.Sprintf("%s[%d] = %v", strings.Repeat("  ", depth), selector, value)
		} else if parent == arena.None {
			line = "root"
		} else {
			line = fmt.Sprintf("%s[%d]", strings.Repeat("  ", depth), selector)
		}
		if runes := []rune(line); len(runes) > width {
			line = string(runes[:width-1]) + "…"
		}
		c := palette[depth%len(palette)]
		if _, err := c.Fprintln(w, line); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("octree dump: %s", err.Error())
	}
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width to clip dump lines accordingly.
func lineWidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil || w <= 0 {
		return 65
	}
	return w
}

func makeDepthPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgRed),
		color.New(color.FgMagenta),
	}
}
