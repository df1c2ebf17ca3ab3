package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Path identifies a position in a tree as the sequence of child indexes from
// the root. The base of a Modified node is at index 0. An empty Path is the
// root.
type Path []int

// String returns "/" for the root and "/i/j/..." otherwise.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// Child returns a new Path extended with the given child index. The receiver
// is not modified.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// ParsePath parses the output of Path.String. Both "" and "/" parse to the
// root path.
func ParsePath(s string) (Path, error) {
	if s == "" || s == "/" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("path %q does not start with /", s)
	}
	parts := strings.Split(s[1:], "/")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("path %q has bad index %q", s, part)
		}
		p[i] = n
	}
	return p, nil
}

// Walk traverses the tree in depth-first pre-order, calling f with each node
// and its path.
func Walk(root Node, f func(p Path, n Node)) {
	walk(root, nil, f)
}

func walk(n Node, p Path, f func(p Path, n Node)) {
	f(p, n)
	switch n := n.(type) {
	case *Modified:
		walk(n.Base, p.Child(0), f)
	case *Composite:
		for i, c := range n.Children {
			walk(c, p.Child(i), f)
		}
	}
}
