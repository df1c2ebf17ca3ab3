package scenario

import (
	"fmt"

	"vtree.dev/pkg/view"
)

type stepSpec struct {
	Desc string
	Wrap *struct {
		Path    string
		Channel string
		Name    string
		Value   any
	}
	SetText *struct {
		Path string
		Text string
	} `yaml:"set-text"`
	Replace *struct {
		Path string
		Node *nodeSpec
	}
	Append *struct {
		Path string
		Node *nodeSpec
	}
	Swap *struct {
		Path string
		A, B int
	}
}

func compileStep(spec *stepSpec) (Step, error) {
	ops := 0
	var step Step
	var err error
	if spec.Wrap != nil {
		ops++
		step, err = compileWrap(spec)
	}
	if spec.SetText != nil {
		ops++
		step, err = compileSetText(spec)
	}
	if spec.Replace != nil {
		ops++
		step, err = compileReplace(spec)
	}
	if spec.Append != nil {
		ops++
		step, err = compileAppend(spec)
	}
	if spec.Swap != nil {
		ops++
		step, err = compileSwap(spec)
	}
	if err != nil {
		return Step{}, err
	}
	if ops != 1 {
		return Step{}, fmt.Errorf("step needs exactly one of wrap, set-text, replace, append, swap")
	}
	return step, nil
}

func compileWrap(spec *stepSpec) (Step, error) {
	p, err := view.ParsePath(spec.Wrap.Path)
	if err != nil {
		return Step{}, err
	}
	m, err := buildModifier(spec.Wrap.Channel, spec.Wrap.Name, spec.Wrap.Value)
	if err != nil {
		return Step{}, err
	}
	return step(spec, fmt.Sprintf("wrap %s with %s", p, m), func(root view.Node) (view.Node, error) {
		return view.WrapAt(root, p, m)
	}), nil
}

func compileSetText(spec *stepSpec) (Step, error) {
	p, err := view.ParsePath(spec.SetText.Path)
	if err != nil {
		return Step{}, err
	}
	text := spec.SetText.Text
	return step(spec, fmt.Sprintf("set text at %s", p), func(root view.Node) (view.Node, error) {
		return view.Rewrite(root, p, func(n view.Node) (view.Node, error) {
			if leaf, ok := n.(*view.Leaf); !ok || leaf.Kind != view.TextLeaf {
				return nil, fmt.Errorf("%s is not a text leaf", n)
			}
			return view.Text(text), nil
		})
	}), nil
}

func compileReplace(spec *stepSpec) (Step, error) {
	p, err := view.ParsePath(spec.Replace.Path)
	if err != nil {
		return Step{}, err
	}
	repl, err := buildNode(spec.Replace.Node)
	if err != nil {
		return Step{}, err
	}
	return step(spec, fmt.Sprintf("replace %s", p), func(root view.Node) (view.Node, error) {
		return view.ReplaceAt(root, p, repl)
	}), nil
}

func compileAppend(spec *stepSpec) (Step, error) {
	p, err := view.ParsePath(spec.Append.Path)
	if err != nil {
		return Step{}, err
	}
	child, err := buildNode(spec.Append.Node)
	if err != nil {
		return Step{}, err
	}
	return step(spec, fmt.Sprintf("append at %s", p), func(root view.Node) (view.Node, error) {
		return view.Rewrite(root, p, func(n view.Node) (view.Node, error) {
			c, ok := n.(*view.Composite)
			if !ok {
				return nil, fmt.Errorf("cannot append to %s", n)
			}
			return withChildren(c, append(childrenCopy(c), child))
		})
	}), nil
}

func compileSwap(spec *stepSpec) (Step, error) {
	p, err := view.ParsePath(spec.Swap.Path)
	if err != nil {
		return Step{}, err
	}
	a, b := spec.Swap.A, spec.Swap.B
	return step(spec, fmt.Sprintf("swap %d and %d at %s", a, b, p), func(root view.Node) (view.Node, error) {
		return view.Rewrite(root, p, func(n view.Node) (view.Node, error) {
			c, ok := n.(*view.Composite)
			if !ok {
				return nil, fmt.Errorf("cannot swap children of %s", n)
			}
			if a < 0 || a >= len(c.Children) || b < 0 || b >= len(c.Children) {
				return nil, fmt.Errorf("swap %d and %d out of range for %s", a, b, c)
			}
			children := childrenCopy(c)
			children[a], children[b] = children[b], children[a]
			return withChildren(c, children)
		})
	}), nil
}

func step(spec *stepSpec, defaultDesc string, run func(view.Node) (view.Node, error)) Step {
	desc := spec.Desc
	if desc == "" {
		desc = defaultDesc
	}
	return Step{Desc: desc, Run: run}
}

func childrenCopy(c *view.Composite) []view.Node {
	children := make([]view.Node, len(c.Children))
	copy(children, c.Children)
	return children
}

// withChildren rebuilds a composite of the same kind with new children,
// going through the public constructors so that tuple arity is revalidated.
func withChildren(c *view.Composite, children []view.Node) (view.Node, error) {
	switch c.Kind {
	case view.TupleKind:
		return view.TupleOf(c.Arity, children...)
	case view.StackKind:
		return view.Stack(c.Axis, children...), nil
	default:
		return view.Group(children...), nil
	}
}
