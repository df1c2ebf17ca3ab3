package tt

import (
	"strconv"
	"testing"
)

func add(a, b int) int { return a + b }

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, strconv.ErrRange
	}
	return a / b, nil
}

func TestTest(t *testing.T) {
	Test(t, Fn("add", add), Table{
		Args(1, 2).Rets(3),
		Args(-1, 1).Rets(0),
	})
	Test(t, Fn("divide", divide), Table{
		Args(6, 3).Rets(2, nil),
		Args(1, 0).Rets(Any, strconv.ErrRange),
	})
}

func TestTest_AlternativeRets(t *testing.T) {
	Test(t, Fn("add", add), Table{
		Args(1, 2).Rets(100).Rets(3),
	})
}

func TestMatch(t *testing.T) {
	if !match([]any{1, "x"}, []any{1, "x"}) {
		t.Errorf("equal values do not match")
	}
	if match([]any{1}, []any{2}) {
		t.Errorf("unequal values match")
	}
	if match([]any{1}, []any{1, 2}) {
		t.Errorf("value sets of different lengths match")
	}
	if !match([]any{Any}, []any{"anything"}) {
		t.Errorf("Any does not match")
	}
}

func TestCall_NilArg(t *testing.T) {
	Test(t, Fn("isNil", func(v any) bool { return v == nil }), Table{
		Args(nil).Rets(true),
		Args(strconv.ErrRange).Rets(false),
	})
}
