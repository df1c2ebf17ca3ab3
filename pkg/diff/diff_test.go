package diff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "vtree.dev/pkg/diff"
	"vtree.dev/pkg/must"
	"vtree.dev/pkg/view"
)

// ops extracts "op path" strings for compact comparison.
func ops(changes []Change) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.Op.String() + " " + c.Path.String()
	}
	return out
}

func checkOps(t *testing.T, changes []Change, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, ops(changes)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
}

func TestDiff_IdenticalTreesReuse(t *testing.T) {
	// Comparison is value-based: two separately constructed identical trees
	// diff as all-reuse.
	mk := func() view.Node {
		return view.Stack(view.Vertical, view.Text("a"), view.Group(view.Color("red")))
	}
	checkOps(t, Diff(mk(), mk()),
		"reuse /", "reuse /0", "reuse /1", "reuse /1/0")
}

func TestDiff_WrapReplacesRootReusesBase(t *testing.T) {
	// Adding a wrapper changes the shape at the root, which is a replace;
	// but the wrapped base is the unchanged original, which is shared, and
	// reported as reused inside the replacement.
	n := view.Text("hi")
	checkOps(t, Diff(n, view.Apply(n, view.Blur(5))),
		"replace /", "reuse /0")
}

func TestDiff_ValueConditionUpdates(t *testing.T) {
	// Toggling a modifier's value keeps the tree shape, so the change is an
	// update, never a replace. This is the efficiency contract of ApplyIf's
	// style of conditional modification.
	n := view.Text("hi")
	prev := view.Apply(n, view.Blur(0))
	cur := view.Apply(n, view.Blur(5))
	changes := Diff(prev, cur)
	checkOps(t, changes, "update /", "update /0")
	if changes[1].Style.Blur != 5 {
		t.Errorf("update carries style %s", changes[1].Style)
	}
}

func TestDiff_BranchingReplaces(t *testing.T) {
	// Selecting between two differently constructed subtrees forces a full
	// replace even when the rendered output would look the same.
	n := view.Text("hi")
	inGroup := func(n view.Node) view.Node { return view.Group(n) }
	inStack := func(n view.Node) view.Node { return view.Stack(view.Vertical, n) }
	prev := view.ApplyEither(n, false, inGroup, inStack)
	cur := view.ApplyEither(n, true, inGroup, inStack)
	checkOps(t, Diff(prev, cur), "replace /")
}

func TestDiff_TextEditUpdates(t *testing.T) {
	prev := view.Group(view.Text("before"), view.Color("red"))
	cur := view.Group(view.Text("after"), view.Color("red"))
	checkOps(t, Diff(prev, cur), "reuse /", "update /0", "reuse /1")
}

func TestDiff_AxisChangeUpdates(t *testing.T) {
	prev := view.Stack(view.Vertical, view.Text("a"))
	cur := view.Stack(view.Horizontal, view.Text("a"))
	checkOps(t, Diff(prev, cur), "update /", "reuse /0")
}

func TestDiff_ArityMismatchReplaces(t *testing.T) {
	prev := view.Group(view.Text("a"))
	cur := view.Group(view.Text("a"), view.Text("b"))
	changes := Diff(prev, cur)
	checkOps(t, changes, "replace /")
	if !view.Equal(changes[0].Node, cur) {
		t.Errorf("replace carries node %s", changes[0].Node)
	}
}

func TestDiff_LeafKindMismatchReplaces(t *testing.T) {
	prev := view.Group(view.Text("a"), view.Text("b"))
	cur := view.Group(view.Text("a"), view.Color("b"))
	checkOps(t, Diff(prev, cur), "reuse /", "reuse /0", "replace /1")
}

func TestDiff_ModifierComparabilityFollowsBases(t *testing.T) {
	// Two modified nodes are comparable only if their bases are; a changed
	// base shape makes the whole wrapper position a replace.
	prev := view.Apply(view.Text("a"), view.Blur(1))
	cur := view.Apply(view.Color("a"), view.Blur(1))
	checkOps(t, Diff(prev, cur), "replace /")
}

func TestDiff_EnvironmentChangePropagatesAsUpdates(t *testing.T) {
	mk := func(font string) view.Node {
		return view.Apply(
			view.Stack(view.Vertical, view.Text("a"), view.Text("b")),
			view.Font(font))
	}
	checkOps(t, Diff(mk("small"), mk("large")),
		"update /", "update /0", "update /0/0", "update /0/1")
}

func TestDiff_TupleChildReplace(t *testing.T) {
	prev := must.OK1(view.TupleOf(3, view.Text("a"), view.Text("b"), view.Text("c")))
	cur := must.OK1(view.TupleOf(3, view.Text("a"), view.Color("x"), view.Text("c")))
	checkOps(t, Diff(prev, cur), "reuse /", "reuse /0", "replace /1", "reuse /2")
}
