// Package tt supports table-driven tests with little boilerplate.
package tt

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by Args and fleshed out by
// chained calls to Rets.
type Case struct {
	args []any
	want [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the Case to require the return values to match the given
// values. Multiple calls add alternative sets of acceptable return values. A
// value may implement the Matcher interface; otherwise matching uses
// cmp.Equal and a mismatch is reported with cmp.Diff.
func (c *Case) Rets(want ...any) *Case {
	c.want = append(c.want, want)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name string
	body any
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// Test tests a function against test cases.
func Test(t *testing.T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		got := call(fn.body, test.args)
		ok := false
		for _, want := range test.want {
			if match(want, got) {
				ok = true
				break
			}
		}
		if !ok && len(test.want) > 0 {
			want := test.want[0]
			t.Errorf("%s(%s) -> %s, want %s\ndiff (-want +got):\n%s",
				fn.name, sprintList(test.args), sprintList(got), sprintList(want),
				diffAll(want, got))
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether an actual return value is acceptable.
	Match(ret any) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(any) bool { return true }

func match(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i, w := range want {
		if m, ok := w.(Matcher); ok {
			if !m.Match(got[i]) {
				return false
			}
		} else if !cmp.Equal(w, got[i]) {
			return false
		}
	}
	return true
}

func diffAll(want, got []any) string {
	var sb strings.Builder
	for i, w := range want {
		if i < len(got) {
			if _, ok := w.(Matcher); ok {
				continue
			}
			sb.WriteString(cmp.Diff(w, got[i]))
		}
	}
	return sb.String()
}

func sprintList(values []any) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is a zero Value; go through a pointer to
			// get a usable nil-interface value instead.
			var v any
			argValues[i] = reflect.ValueOf(&v).Elem()
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	retValues := reflect.ValueOf(fn).Call(argValues)
	rets := make([]any, len(retValues))
	for i, ret := range retValues {
		rets[i] = ret.Interface()
	}
	return rets
}
