package style

import "vtree.dev/pkg/view"

// Resolution maps each position in a tree, keyed by view.Path.String, to its
// resolved style.
type Resolution map[string]Style

// At returns the resolved style at p, or Default if p is not in the
// resolution.
func (r Resolution) At(p view.Path) Style {
	if s, ok := r[p.String()]; ok {
		return s
	}
	return Default()
}

// Resolve computes the resolved style of every node in the tree. The input
// tree is not modified; Resolve is a pure function of the tree value.
func Resolve(root view.Node) Resolution {
	res := make(Resolution)
	resolve(root, nil, nil, Default(), res)
	return res
}

// resolve records the style at p and recurses. env holds the environment
// channel; acc holds the direct channel, already combined for the wrappers
// entered so far, outermost first.
func resolve(n view.Node, p view.Path, env map[string]any, acc Style, res Resolution) {
	switch n := n.(type) {
	case *view.Modified:
		m := n.Modifier
		if m.Channel == view.Environment {
			if envNames[m.Name] {
				env = extend(env, m.Name, m.Value)
			}
		} else if combine, ok := directCombinators[m.Name]; ok {
			combine(&acc, m.Value)
		}
		res[p.String()] = merge(env, acc)
		resolve(n.Base, p.Child(0), env, acc, res)
	case *view.Composite:
		res[p.String()] = merge(env, acc)
		for i, c := range n.Children {
			resolve(c, p.Child(i), env, acc, res)
		}
	default:
		res[p.String()] = merge(env, acc)
	}
}

// extend copies the environment with one name overridden. Copying keeps
// sibling subtrees isolated from each other's overrides.
func extend(env map[string]any, name string, value any) map[string]any {
	extended := make(map[string]any, len(env)+1)
	for k, v := range env {
		extended[k] = v
	}
	extended[name] = value
	return extended
}

// merge combines the two channels into one Style. They touch disjoint
// fields, so the order is immaterial.
func merge(env map[string]any, acc Style) Style {
	s := acc
	if v, ok := env[view.NameFont]; ok {
		s.Font = toString(v)
	}
	if v, ok := env[view.NameForeground]; ok {
		s.Foreground = toString(v)
	}
	if v, ok := env[view.NameTextSize]; ok {
		s.TextSize = toFloat(v)
	}
	return s
}
