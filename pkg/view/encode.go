package view

import (
	"encoding/json"
	"fmt"
)

// The wire format is a plain recursive encoding of the node variants as
// nested key-value records. It round-trips exactly: decoding the encoding of
// a tree yields a structurally equal tree. Decoding goes through the same
// constructors as direct construction, so a hand-written document with a bad
// tuple arity fails with an ArityError.

type wireNode struct {
	Kind         string        `json:"kind"`
	Text         *string       `json:"text,omitempty"`
	Color        string        `json:"color,omitempty"`
	Form         string        `json:"form,omitempty"`
	CornerRadius float64       `json:"cornerRadius,omitempty"`
	Axis         string        `json:"axis,omitempty"`
	Arity        int           `json:"arity,omitempty"`
	Children     []*wireNode   `json:"children,omitempty"`
	Modifier     *wireModifier `json:"modifier,omitempty"`
	Base         *wireNode     `json:"base,omitempty"`
}

type wireModifier struct {
	Channel string `json:"channel"`
	Name    string `json:"name"`
	Value   any    `json:"value"`
}

// Marshal encodes a tree as JSON.
func Marshal(n Node) ([]byte, error) {
	w, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Unmarshal decodes a tree encoded by Marshal.
func Unmarshal(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(&w)
}

func toWire(n Node) (*wireNode, error) {
	switch n := n.(type) {
	case *Leaf:
		switch n.Kind {
		case TextLeaf:
			text := n.Text
			return &wireNode{Kind: "text", Text: &text}, nil
		case ColorLeaf:
			return &wireNode{Kind: "color", Color: n.Color}, nil
		case ShapeLeaf:
			return &wireNode{
				Kind: "shape",
				Form: string(n.Shape.Form), CornerRadius: n.Shape.CornerRadius,
			}, nil
		}
		return nil, fmt.Errorf("cannot encode %s", n.Kind)
	case *Composite:
		children := make([]*wireNode, len(n.Children))
		for i, c := range n.Children {
			w, err := toWire(c)
			if err != nil {
				return nil, err
			}
			children[i] = w
		}
		switch n.Kind {
		case StackKind:
			return &wireNode{Kind: "stack", Axis: n.Axis.String(), Children: children}, nil
		case GroupKind:
			return &wireNode{Kind: "group", Children: children}, nil
		case TupleKind:
			return &wireNode{Kind: "tuple", Arity: n.Arity, Children: children}, nil
		}
		return nil, fmt.Errorf("cannot encode %s", n.Kind)
	case *Modified:
		base, err := toWire(n.Base)
		if err != nil {
			return nil, err
		}
		return &wireNode{
			Kind: "modified",
			Modifier: &wireModifier{
				Channel: n.Modifier.Channel.String(),
				Name:    n.Modifier.Name,
				Value:   n.Modifier.Value,
			},
			Base: base,
		}, nil
	}
	return nil, fmt.Errorf("cannot encode %T", n)
}

func fromWire(w *wireNode) (Node, error) {
	switch w.Kind {
	case "text":
		var text string
		if w.Text != nil {
			text = *w.Text
		}
		return Text(text), nil
	case "color":
		return Color(w.Color), nil
	case "shape":
		return Shape(ShapeSpec{Form: ShapeForm(w.Form), CornerRadius: w.CornerRadius}), nil
	case "stack", "group", "tuple":
		children := make([]Node, len(w.Children))
		for i, c := range w.Children {
			n, err := fromWire(c)
			if err != nil {
				return nil, err
			}
			children[i] = n
		}
		switch w.Kind {
		case "stack":
			axis, err := parseAxis(w.Axis)
			if err != nil {
				return nil, err
			}
			return Stack(axis, children...), nil
		case "group":
			return Group(children...), nil
		default:
			return TupleOf(w.Arity, children...)
		}
	case "modified":
		if w.Modifier == nil || w.Base == nil {
			return nil, fmt.Errorf("modified node needs modifier and base")
		}
		base, err := fromWire(w.Base)
		if err != nil {
			return nil, err
		}
		m, err := parseModifier(w.Modifier)
		if err != nil {
			return nil, err
		}
		return Apply(base, m), nil
	}
	return nil, fmt.Errorf("unknown node kind %q", w.Kind)
}

func parseAxis(s string) (Axis, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func parseModifier(w *wireModifier) (Modifier, error) {
	var channel Channel
	switch w.Channel {
	case "direct":
		channel = Direct
	case "env":
		channel = Environment
	default:
		return Modifier{}, fmt.Errorf("unknown modifier channel %q", w.Channel)
	}
	switch w.Value.(type) {
	case float64, bool, string, nil:
	default:
		return Modifier{}, fmt.Errorf("modifier value %v is not a scalar", w.Value)
	}
	return Modifier{Channel: channel, Name: w.Name, Value: w.Value}, nil
}
