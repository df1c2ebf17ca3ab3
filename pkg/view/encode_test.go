package view_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"vtree.dev/pkg/must"
	. "vtree.dev/pkg/view"
)

// everyKind builds a tree containing every node kind, including a tuple at
// the arity ceiling.
func everyKind() Node {
	ten := make([]Node, 10)
	for i := range ten {
		ten[i] = Color("c")
	}
	tuple := must.OK1(TupleOf(10, ten...))
	return Apply(
		Stack(Horizontal,
			Text(""),
			Text("hello"),
			Shape(ShapeSpec{Form: Capsule, CornerRadius: 2.5}),
			Group(
				Apply(Color("teal"), Blur(5)),
				Apply(Text("x"), Font("mono")),
				Apply(Text("y"), Bold(true)),
			),
			tuple,
		),
		Foreground("#336699"))
}

func TestRoundTrip(t *testing.T) {
	tree := everyKind()
	data := must.OK1(Marshal(tree))
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal -> error %v", err)
	}
	if !Equal(tree, decoded) {
		t.Errorf("round trip changed the tree (-want +got):\n%s",
			cmp.Diff(tree, decoded))
	}
}

func TestMarshal_Format(t *testing.T) {
	data := must.OK1(Marshal(Apply(Text("hi"), Blur(5))))
	for _, want := range []string{
		`"kind":"modified"`, `"channel":"direct"`, `"name":"blur"`,
		`"value":5`, `"kind":"text"`, `"text":"hi"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal output %s does not contain %s", data, want)
		}
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown kind", `{"kind":"mystery"}`},
		{"unknown axis", `{"kind":"stack","axis":"diagonal"}`},
		{"missing base", `{"kind":"modified","modifier":{"channel":"direct","name":"blur","value":5}}`},
		{"unknown channel", `{"kind":"modified","modifier":{"channel":"sideways","name":"blur","value":5},"base":{"kind":"text","text":""}}`},
		{"non-scalar value", `{"kind":"modified","modifier":{"channel":"direct","name":"blur","value":[5]},"base":{"kind":"text","text":""}}`},
		{"not json", `{`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(test.data)); err == nil {
				t.Errorf("Unmarshal(%s) -> no error", test.data)
			}
		})
	}
}

func TestUnmarshal_BadTupleArity(t *testing.T) {
	data := `{"kind":"tuple","arity":3,"children":[{"kind":"text","text":"a"}]}`
	_, err := Unmarshal([]byte(data))
	var arityErr *ArityError
	if !errors.As(err, &arityErr) {
		t.Errorf("Unmarshal bad tuple -> error %v, want ArityError", err)
	}
}
