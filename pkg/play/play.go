// Package play orchestrates a playground session: a chain of user-authored
// tree transformations, each diffed against its predecessor.
package play

import (
	"fmt"

	"vtree.dev/pkg/diff"
	"vtree.dev/pkg/view"
)

// Step transforms the previous tree into the next one. A step must not
// mutate its argument; it builds a new tree, sharing unchanged subtrees.
type Step func(view.Node) (view.Node, error)

// Result is the outcome of one step: the tree it produced and the changes
// relative to the previous tree.
type Result struct {
	Node    view.Node
	Changes []diff.Change
}

// StepError reports that a transformation step failed. Steps after the
// failing one do not run, but the results of the steps before it are still
// returned alongside the error.
type StepError struct {
	Index int
	Err   error
}

// Error numbers the step as the console does, starting from 1.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index+1, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Run applies each step to the previous step's output, starting from
// initial, and records the resulting tree and change-list per step. On a
// step failure it returns the results produced so far and a *StepError;
// partial progress is never discarded.
func Run(initial view.Node, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	prev := initial
	for i, step := range steps {
		next, err := step(prev)
		if err == nil && next == nil {
			err = fmt.Errorf("step returned no tree")
		}
		if err != nil {
			return results, &StepError{Index: i, Err: err}
		}
		results = append(results, Result{Node: next, Changes: diff.Diff(prev, next)})
		prev = next
	}
	return results, nil
}
