// Package progtest supports testing subprograms.
package progtest

import (
	"io"
	"os"
	"testing"

	"vtree.dev/pkg/must"
	"vtree.dev/pkg/prog"
)

// Output captures what a program run produced.
type Output struct {
	Exit   int
	Stdout string
	Stderr string
}

// Run runs a program with the given stdin content and arguments (not
// including the binary name), capturing its output.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) Output {
	t.Helper()
	in := fileWith(t, stdin)
	defer in.Close()

	outRead, outWrite := must.OK2(os.Pipe())
	errRead, errWrite := must.OK2(os.Pipe())
	exit := prog.Run(
		[3]*os.File{in, outWrite, errWrite}, append([]string{"vtree"}, args...), p)
	outWrite.Close()
	errWrite.Close()
	stdout := string(must.OK1(io.ReadAll(outRead)))
	outRead.Close()
	stderr := string(must.OK1(io.ReadAll(errRead)))
	errRead.Close()
	return Output{Exit: exit, Stdout: stdout, Stderr: stderr}
}

func fileWith(t *testing.T, content string) *os.File {
	t.Helper()
	read, write := must.OK2(os.Pipe())
	go func() {
		write.WriteString(content)
		write.Close()
	}()
	return read
}
