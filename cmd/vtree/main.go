// Command vtree is an interactive concept playground for declarative view
// trees: it applies user-authored edits to an immutable tree, resolves the
// effective style of every node, and reports what a minimal renderer would
// reuse, update or replace at each step.
package main

import (
	"os"

	"vtree.dev/pkg/prog"
	"vtree.dev/pkg/server"
	"vtree.dev/pkg/session"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&server.Program{}, &session.Program{})))
}
