package view

import "fmt"

// ArityError is returned when constructing a tuple composite whose declared
// arity is out of range, or whose child count does not match the declared
// arity. It is always a caller error and is never retried.
type ArityError struct {
	Arity    int
	Children int
}

func (e *ArityError) Error() string {
	if e.Arity > MaxTupleArity {
		return fmt.Sprintf("tuple arity %d exceeds maximum of %d", e.Arity, MaxTupleArity)
	}
	if e.Arity < 2 {
		return fmt.Sprintf("tuple arity %d below minimum of 2", e.Arity)
	}
	return fmt.Sprintf("tuple of %d constructed with %d children", e.Arity, e.Children)
}
