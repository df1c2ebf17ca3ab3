package view_test

import (
	"errors"
	"testing"

	"vtree.dev/pkg/tt"
	. "vtree.dev/pkg/view"
)

func TestTupleOf(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")

	n, err := TupleOf(3, a, b, c)
	if err != nil {
		t.Fatalf("TupleOf(3, a, b, c) -> error %v", err)
	}
	tuple := n.(*Composite)
	if tuple.Kind != TupleKind || tuple.Arity != 3 || len(tuple.Children) != 3 {
		t.Errorf("TupleOf(3, a, b, c) -> %s", tuple)
	}

	ten := make([]Node, 10)
	for i := range ten {
		ten[i] = Text("x")
	}
	if _, err := TupleOf(10, ten...); err != nil {
		t.Errorf("TupleOf(10, ...10 children) -> error %v", err)
	}
}

func TestTupleOf_ArityErrors(t *testing.T) {
	a, b := Text("a"), Text("b")
	eleven := make([]Node, 11)
	for i := range eleven {
		eleven[i] = Text("x")
	}

	tests := []struct {
		name     string
		arity    int
		children []Node
	}{
		{"too few children", 3, []Node{a, b}},
		{"too many children", 2, []Node{a, b, a}},
		{"arity above ceiling", 11, eleven},
		{"arity below minimum", 1, []Node{a}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := TupleOf(test.arity, test.children...)
			var arityErr *ArityError
			if !errors.As(err, &arityErr) {
				t.Fatalf("TupleOf(%d, %d children) -> error %v, want ArityError",
					test.arity, len(test.children), err)
			}
			if arityErr.Arity != test.arity || arityErr.Children != len(test.children) {
				t.Errorf("ArityError = %+v", arityErr)
			}
			if arityErr.Error() == "" {
				t.Errorf("ArityError has empty message")
			}
		})
	}
}

func TestConstructorsCopyChildren(t *testing.T) {
	children := []Node{Text("a"), Text("b")}
	stack := Stack(Vertical, children...).(*Composite)
	children[0] = Text("mutated")
	if stack.Children[0].(*Leaf).Text != "a" {
		t.Errorf("Stack aliases the caller's children slice")
	}
}

func TestNodeString(t *testing.T) {
	tuple, _ := TupleOf(2, Text("a"), Text("b"))
	tt.Test(t, tt.Fn("String", Node.String), tt.Table{
		tt.Args(Text("hi")).Rets(`text("hi")`),
		tt.Args(Color("teal")).Rets("color(teal)"),
		tt.Args(Shape(ShapeSpec{Form: Circle})).Rets("shape(circle)"),
		tt.Args(Shape(ShapeSpec{Form: Rectangle, CornerRadius: 4})).
			Rets("shape(rectangle, r=4)"),
		tt.Args(Stack(Horizontal, Text("a"))).Rets("stack(horizontal, 1)"),
		tt.Args(Group(Text("a"), Text("b"))).Rets("group(2)"),
		tt.Args(tuple).Rets("tuple/2"),
		tt.Args(Apply(Text("a"), Blur(5))).Rets("modified(blur=5)"),
		tt.Args(Apply(Text("a"), Font("mono"))).Rets("modified(env:font=mono)"),
	})
}
