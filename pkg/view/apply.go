package view

// Apply wraps n with m, adding exactly one level of depth. The original node
// is not changed and remains reachable through any other reference.
func Apply(n Node, m Modifier) Node {
	return &Modified{Base: n, Modifier: m}
}

// ApplyIf returns Apply(n, m) when cond is true, and n itself otherwise. The
// untaken branch is never constructed: a value-level condition changes the
// properties of one persistent node instead of swapping between two
// independently built subtrees.
func ApplyIf(n Node, cond bool, m Modifier) Node {
	if cond {
		return Apply(n, m)
	}
	return n
}

// ApplyEither builds the subtree with whenTrue when cond is true and with
// whenFalse otherwise. The two branches produce structurally distinct node
// identities: diffing one branch's result against the other's is a replace,
// not an update, even when the resolved output looks the same. Prefer
// ApplyIf when both branches would modify the same underlying node.
func ApplyEither(n Node, cond bool, whenTrue, whenFalse func(Node) Node) Node {
	if cond {
		return whenTrue(n)
	}
	return whenFalse(n)
}
