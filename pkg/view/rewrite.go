package view

import "fmt"

// Rewrite returns a new tree in which the node at p is replaced by the
// result of f. Only the spine from the root to p is rebuilt; all other
// subtrees are shared with the input tree. Rewriting a tuple revalidates its
// arity, so f cannot change a tuple's child count without an ArityError.
func Rewrite(root Node, p Path, f func(Node) (Node, error)) (Node, error) {
	if len(p) == 0 {
		return f(root)
	}
	switch n := root.(type) {
	case *Modified:
		if p[0] != 0 {
			return nil, fmt.Errorf("no child %d under %s", p[0], n)
		}
		base, err := Rewrite(n.Base, p[1:], f)
		if err != nil {
			return nil, err
		}
		return &Modified{Base: base, Modifier: n.Modifier}, nil
	case *Composite:
		if p[0] < 0 || p[0] >= len(n.Children) {
			return nil, fmt.Errorf("no child %d under %s", p[0], n)
		}
		child, err := Rewrite(n.Children[p[0]], p[1:], f)
		if err != nil {
			return nil, err
		}
		children := copyChildren(n.Children)
		children[p[0]] = child
		return rebuild(n, children)
	default:
		return nil, fmt.Errorf("no child %d under %s", p[0], n)
	}
}

// rebuild makes a composite of the same kind as n with new children,
// revalidating tuple arity.
func rebuild(n *Composite, children []Node) (Node, error) {
	if n.Kind == TupleKind {
		return TupleOf(n.Arity, children...)
	}
	return &Composite{Kind: n.Kind, Axis: n.Axis, Children: children}, nil
}

// ReplaceAt returns a new tree with the node at p replaced by repl.
func ReplaceAt(root Node, p Path, repl Node) (Node, error) {
	return Rewrite(root, p, func(Node) (Node, error) { return repl, nil })
}

// WrapAt returns a new tree with the node at p wrapped by m.
func WrapAt(root Node, p Path, m Modifier) (Node, error) {
	return Rewrite(root, p, func(n Node) (Node, error) { return Apply(n, m), nil })
}
