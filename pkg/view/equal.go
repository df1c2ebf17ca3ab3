package view

// Equal reports whether two trees are structurally equal. Comparison is by
// value, never by reference; two independently constructed but identical
// trees are equal.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		return ok && *a == *b
	case *Composite:
		b, ok := b.(*Composite)
		if !ok || a.Kind != b.Kind || a.Axis != b.Axis || a.Arity != b.Arity ||
			len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	case *Modified:
		b, ok := b.(*Modified)
		return ok && a.Modifier == b.Modifier && Equal(a.Base, b.Base)
	}
	return a == nil && b == nil
}
