// Package scenario loads playground scenarios from YAML documents.
//
// A scenario names an initial tree and an ordered list of edits. Edits come
// from a closed vocabulary - wrap, set-text, replace, append, swap - and are
// compiled to play.Step functions that rebuild only the edited spine of the
// tree.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
	"vtree.dev/pkg/play"
	"vtree.dev/pkg/view"
)

// Scenario is a loaded scenario document.
type Scenario struct {
	Name    string
	Initial view.Node
	Steps   []Step
}

// Step pairs a compiled transformation with its description from the
// document.
type Step struct {
	Desc string
	Run  play.Step
}

// PlaySteps returns the transformation functions in document order, for use
// with play.Run.
func (s *Scenario) PlaySteps() []play.Step {
	steps := make([]play.Step, len(s.Steps))
	for i, step := range s.Steps {
		steps[i] = step.Run
	}
	return steps
}

// Load parses a YAML scenario document. Structural errors in the initial
// tree, including bad tuple arities, are reported immediately; errors inside
// a step (such as an edit path that no longer exists) only surface when the
// step runs.
func Load(data []byte) (*Scenario, error) {
	var spec scenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if spec.Initial == nil {
		return nil, fmt.Errorf("scenario has no initial tree")
	}
	initial, err := buildNode(spec.Initial)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(spec.Steps))
	for i, stepSpec := range spec.Steps {
		step, err := compileStep(&stepSpec)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps[i] = step
	}
	return &Scenario{Name: spec.Name, Initial: initial, Steps: steps}, nil
}

type scenarioSpec struct {
	Name    string
	Initial *nodeSpec
	Steps   []stepSpec
}

type nodeSpec struct {
	Kind         string
	Text         *string
	Color        string
	Form         string
	CornerRadius float64 `yaml:"corner-radius"`
	Axis         string
	Arity        int
	Children     []*nodeSpec
	Channel      string
	Name         string
	Value        any
	Base         *nodeSpec
}

func buildNode(spec *nodeSpec) (view.Node, error) {
	switch spec.Kind {
	case "text":
		var text string
		if spec.Text != nil {
			text = *spec.Text
		}
		return view.Text(text), nil
	case "color":
		return view.Color(spec.Color), nil
	case "shape":
		return view.Shape(view.ShapeSpec{
			Form:         view.ShapeForm(spec.Form),
			CornerRadius: spec.CornerRadius,
		}), nil
	case "stack", "group", "tuple":
		children := make([]view.Node, len(spec.Children))
		for i, c := range spec.Children {
			n, err := buildNode(c)
			if err != nil {
				return nil, err
			}
			children[i] = n
		}
		switch spec.Kind {
		case "stack":
			axis, err := parseAxis(spec.Axis)
			if err != nil {
				return nil, err
			}
			return view.Stack(axis, children...), nil
		case "group":
			return view.Group(children...), nil
		default:
			return view.TupleOf(spec.Arity, children...)
		}
	case "modified":
		if spec.Base == nil {
			return nil, fmt.Errorf("modified node needs a base")
		}
		base, err := buildNode(spec.Base)
		if err != nil {
			return nil, err
		}
		m, err := buildModifier(spec.Channel, spec.Name, spec.Value)
		if err != nil {
			return nil, err
		}
		return view.Apply(base, m), nil
	}
	return nil, fmt.Errorf("unknown node kind %q", spec.Kind)
}

func parseAxis(s string) (view.Axis, error) {
	switch s {
	case "", "vertical":
		return view.Vertical, nil
	case "horizontal":
		return view.Horizontal, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func buildModifier(channel, name string, value any) (view.Modifier, error) {
	var ch view.Channel
	switch channel {
	case "direct":
		ch = view.Direct
	case "env":
		ch = view.Environment
	default:
		return view.Modifier{}, fmt.Errorf("unknown modifier channel %q", channel)
	}
	// YAML decodes integer scalars as int; normalize to float64 so modifier
	// values compare equal to ones built in Go or decoded from JSON.
	switch v := value.(type) {
	case int:
		value = float64(v)
	case float64, bool, string:
	default:
		return view.Modifier{}, fmt.Errorf("modifier value %v is not a scalar", value)
	}
	return view.Modifier{Channel: ch, Name: name, Value: value}, nil
}
