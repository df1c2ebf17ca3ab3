package view_test

import (
	"errors"
	"testing"

	"vtree.dev/pkg/must"
	. "vtree.dev/pkg/view"
)

func TestRewrite_SharesUnchangedSubtrees(t *testing.T) {
	left := Group(Text("l"))
	right := Text("r")
	root := Stack(Vertical, left, right)

	rewritten := must.OK1(WrapAt(root, Path{1}, Blur(2)))

	got := rewritten.(*Composite)
	if got.Children[0] != left {
		t.Errorf("unchanged subtree was copied instead of shared")
	}
	if !Equal(got.Children[1], Apply(right, Blur(2))) {
		t.Errorf("rewritten child = %s", got.Children[1])
	}
	// The original tree is untouched.
	if root.(*Composite).Children[1] != right {
		t.Errorf("rewrite mutated the original tree")
	}
}

func TestRewrite_ThroughModified(t *testing.T) {
	root := Apply(Group(Text("a")), Font("mono"))
	rewritten := must.OK1(ReplaceAt(root, Path{0, 0}, Color("red")))
	want := Apply(Group(Color("red")), Font("mono"))
	if !Equal(rewritten, want) {
		t.Errorf("rewritten = %s, want %s", rewritten, want)
	}
}

func TestRewrite_BadPaths(t *testing.T) {
	root := Stack(Vertical, Text("a"))
	for _, p := range []Path{{1}, {0, 0}, {-1}} {
		if _, err := ReplaceAt(root, p, Text("b")); err == nil {
			t.Errorf("ReplaceAt(root, %s) -> no error", p)
		}
	}
	// The base of a modified node is at index 0 only.
	if _, err := ReplaceAt(Apply(Text("a"), Blur(1)), Path{1}, Text("b")); err == nil {
		t.Errorf("ReplaceAt(modified, /1) -> no error")
	}
}

func TestRewrite_RevalidatesTupleArity(t *testing.T) {
	tuple := must.OK1(TupleOf(2, Text("a"), Text("b")))
	// Replacing a child keeps the arity and succeeds.
	if _, err := ReplaceAt(tuple, Path{0}, Color("red")); err != nil {
		t.Errorf("replacing a tuple child -> error %v", err)
	}
	// A rewrite that changes the child count fails with an ArityError.
	_, err := Rewrite(tuple, nil, func(n Node) (Node, error) {
		c := n.(*Composite)
		return TupleOf(c.Arity, append([]Node{Text("extra")}, c.Children...)...)
	})
	var arityErr *ArityError
	if !errors.As(err, &arityErr) {
		t.Errorf("growing a tuple -> error %v, want ArityError", err)
	}
}
