// Package session runs a scenario end to end: load, step, diff, render, and
// optionally record each step to a session store. It is the default
// subprogram of vtree.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"vtree.dev/pkg/play"
	"vtree.dev/pkg/prog"
	"vtree.dev/pkg/render"
	"vtree.dev/pkg/scenario"
	"vtree.dev/pkg/store"
	"vtree.dev/pkg/style"
)

// Program is the scenario-running subprogram. It reads the scenario from the
// file named by its argument, or from stdin when no argument is given.
type Program struct{}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("want at most one scenario file")
	}
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(fds[0])
	}
	if err != nil {
		return err
	}

	sc, err := scenario.Load(data)
	if err != nil {
		return err
	}

	var db *store.Store
	if f.DB != "" {
		db, err = store.Open(f.DB)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	color := !f.NoColor && render.Colorize(fds[1])
	results, runErr := play.Run(sc.Initial, sc.PlaySteps())
	for i, result := range results {
		fmt.Fprintf(fds[1], "step %d: %s\n", i+1, sc.Steps[i].Desc)
		render.Changes(fds[1], result.Changes, color)
		render.Tree(fds[1], result.Node, style.Resolve(result.Node))
		fmt.Fprintln(fds[1])
		if db != nil {
			if _, err := db.AddStep(result.Node, result.Changes); err != nil {
				return err
			}
		}
	}
	if runErr != nil {
		// Results up to the failing step have been shown and recorded; only
		// the failure itself remains to report.
		var stepErr *play.StepError
		if errors.As(runErr, &stepErr) {
			return fmt.Errorf("%s: %w", sc.Steps[stepErr.Index].Desc, runErr)
		}
		return runErr
	}
	return nil
}
