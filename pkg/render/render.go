// Package render writes conceptual outlines of trees and change-lists to a
// console. It prints structure and resolved styles, not pixels.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"vtree.dev/pkg/diff"
	"vtree.dev/pkg/style"
	"vtree.dev/pkg/view"
)

// SGR sequences for change ops.
const (
	sgrReuse   = "\033[2m"
	sgrUpdate  = "\033[33m"
	sgrReplace = "\033[31;1m"
	sgrReset   = "\033[m"
)

// Colorize reports whether styled output should be used when writing to f.
func Colorize(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Tree writes one line per node, indented by depth, with the node's resolved
// style when it differs from the default.
func Tree(w io.Writer, root view.Node, res style.Resolution) {
	view.Walk(root, func(p view.Path, n view.Node) {
		line := n.String()
		if s := res.At(p); s != style.Default() {
			line += " " + s.String()
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", len(p)), line)
	})
}

// Changes writes one line per change. With color enabled, reuses are dimmed,
// updates yellow and replaces bold red.
func Changes(w io.Writer, changes []diff.Change, color bool) {
	for _, c := range changes {
		if !color {
			fmt.Fprintln(w, c)
			continue
		}
		var sgr string
		switch c.Op {
		case diff.Update:
			sgr = sgrUpdate
		case diff.Replace:
			sgr = sgrReplace
		default:
			sgr = sgrReuse
		}
		fmt.Fprintf(w, "%s%s%s\n", sgr, c, sgrReset)
	}
}
