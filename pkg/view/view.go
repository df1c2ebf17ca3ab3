// Package view defines the immutable node values that make up a view tree.
//
// A tree is built from three variants: Leaf nodes carrying a small payload,
// Composite nodes holding an ordered list of children, and Modified nodes
// wrapping exactly one base node with a modifier. Node values are never
// mutated after construction; every transformation builds a new tree that
// shares unchanged subtrees with its predecessor.
package view

import "fmt"

// Node is an element of a view tree. The set of implementations is closed:
// *Leaf, *Composite and *Modified.
type Node interface {
	// String returns a one-line, non-recursive description of the node.
	String() string
	node()
}

// LeafKind enumerates the payload types a Leaf can carry.
type LeafKind uint8

const (
	TextLeaf LeafKind = iota
	ColorLeaf
	ShapeLeaf
)

func (k LeafKind) String() string {
	switch k {
	case TextLeaf:
		return "text"
	case ColorLeaf:
		return "color"
	case ShapeLeaf:
		return "shape"
	}
	return fmt.Sprintf("bad leaf kind %d", uint8(k))
}

// ShapeForm identifies the outline of a shape leaf.
type ShapeForm string

const (
	Rectangle ShapeForm = "rectangle"
	Circle    ShapeForm = "circle"
	Capsule   ShapeForm = "capsule"
)

// ShapeSpec describes a shape leaf's payload.
type ShapeSpec struct {
	Form         ShapeForm
	CornerRadius float64
}

// Leaf is a childless node. Exactly one payload field is meaningful,
// determined by Kind.
type Leaf struct {
	Kind  LeafKind
	Text  string
	Color string
	Shape ShapeSpec
}

func (l *Leaf) node() {}

func (l *Leaf) String() string {
	switch l.Kind {
	case TextLeaf:
		return fmt.Sprintf("text(%q)", l.Text)
	case ColorLeaf:
		return fmt.Sprintf("color(%s)", l.Color)
	case ShapeLeaf:
		if l.Shape.CornerRadius != 0 {
			return fmt.Sprintf("shape(%s, r=%v)", l.Shape.Form, l.Shape.CornerRadius)
		}
		return fmt.Sprintf("shape(%s)", l.Shape.Form)
	}
	return l.Kind.String()
}

// CompositeKind enumerates the container types.
type CompositeKind uint8

const (
	StackKind CompositeKind = iota
	GroupKind
	TupleKind
)

func (k CompositeKind) String() string {
	switch k {
	case StackKind:
		return "stack"
	case GroupKind:
		return "group"
	case TupleKind:
		return "tuple"
	}
	return fmt.Sprintf("bad composite kind %d", uint8(k))
}

// Axis is the layout direction of a stack. It is recorded but has no effect
// on resolution.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Composite is a node with an ordered list of children. For TupleKind, Arity
// records the declared child count, which construction has validated.
type Composite struct {
	Kind     CompositeKind
	Axis     Axis
	Arity    int
	Children []Node
}

func (c *Composite) node() {}

func (c *Composite) String() string {
	switch c.Kind {
	case StackKind:
		return fmt.Sprintf("stack(%s, %d)", c.Axis, len(c.Children))
	case TupleKind:
		return fmt.Sprintf("tuple/%d", c.Arity)
	default:
		return fmt.Sprintf("group(%d)", len(c.Children))
	}
}

// Modified wraps exactly one base node with a modifier. Wrapping never
// mutates the base; nesting order is significant and preserved exactly as
// applied.
type Modified struct {
	Base     Node
	Modifier Modifier
}

func (m *Modified) node() {}

func (m *Modified) String() string {
	return fmt.Sprintf("modified(%s)", m.Modifier)
}

// Text returns a text leaf.
func Text(s string) Node { return &Leaf{Kind: TextLeaf, Text: s} }

// Color returns a color leaf. The value is an opaque color name or #rrggbb
// string; resolution does not interpret it.
func Color(c string) Node { return &Leaf{Kind: ColorLeaf, Color: c} }

// Shape returns a shape leaf.
func Shape(spec ShapeSpec) Node { return &Leaf{Kind: ShapeLeaf, Shape: spec} }

// Stack returns a stack composite with the given layout axis. The children
// slice is copied.
func Stack(axis Axis, children ...Node) Node {
	return &Composite{Kind: StackKind, Axis: axis, Children: copyChildren(children)}
}

// Group returns a group composite. The children slice is copied.
func Group(children ...Node) Node {
	return &Composite{Kind: GroupKind, Children: copyChildren(children)}
}

// MaxTupleArity is the fixed ceiling on tuple arity.
const MaxTupleArity = 10

// TupleOf returns a tuple composite with the declared arity n. It returns an
// *ArityError if n is not in [2, MaxTupleArity] or if the number of children
// differs from n.
func TupleOf(n int, children ...Node) (Node, error) {
	if n < 2 || n > MaxTupleArity || len(children) != n {
		return nil, &ArityError{Arity: n, Children: len(children)}
	}
	return &Composite{Kind: TupleKind, Arity: n, Children: copyChildren(children)}, nil
}

func copyChildren(children []Node) []Node {
	cp := make([]Node, len(children))
	copy(cp, children)
	return cp
}
