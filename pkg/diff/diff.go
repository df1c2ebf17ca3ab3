// Package diff compares two view trees and produces a minimal change-list.
//
// Two nodes at the same position are comparable only if they have the same
// structural shape: leaves of the same kind, composites of the same kind and
// arity, or modified nodes wrapping comparable bases. A comparable position
// is reused when nothing observable changed and updated when its payload or
// resolved style changed; any other position is replaced wholesale. The
// comparison is purely structural and value-based, never by reference, so
// two separately constructed but identical trees diff as all-reuse.
package diff

import (
	"fmt"

	"vtree.dev/pkg/style"
	"vtree.dev/pkg/view"
)

// Op is the kind of a change.
type Op uint8

const (
	// Reuse means the node at the path carries over unchanged.
	Reuse Op = iota
	// Update means the node at the path keeps its identity but its payload
	// or resolved style changed.
	Update
	// Replace means the previous node at the path is discarded and the new
	// subtree takes its place.
	Replace
)

func (op Op) String() string {
	switch op {
	case Reuse:
		return "reuse"
	case Update:
		return "update"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("bad op %d", uint8(op))
}

// Change describes what happened at one position of the current tree. Style
// is meaningful for Update; Node is meaningful for Replace.
type Change struct {
	Op    Op
	Path  view.Path
	Style style.Style
	Node  view.Node
}

func (c Change) String() string {
	switch c.Op {
	case Update:
		return fmt.Sprintf("update %s %s", c.Path, c.Style)
	case Replace:
		return fmt.Sprintf("replace %s with %s", c.Path, c.Node)
	}
	return fmt.Sprintf("reuse %s", c.Path)
}

// Diff resolves both trees and compares them position by position, in
// pre-order of the current tree. Positions under a replaced subtree are not
// reported, with one exception: when the replacement is a modifier wrapper
// around the unchanged previous node, the base position is reported as
// reused, since the wrapped subtree is shared rather than rebuilt.
func Diff(prev, cur view.Node) []Change {
	d := differ{prev: style.Resolve(prev), cur: style.Resolve(cur)}
	d.diff(prev, cur, nil)
	return d.changes
}

type differ struct {
	prev, cur style.Resolution
	changes   []Change
}

func (d *differ) diff(prev, cur view.Node, p view.Path) {
	if !comparable(prev, cur) {
		d.emit(Change{Op: Replace, Path: p, Node: cur})
		if m, ok := cur.(*view.Modified); ok && view.Equal(prev, m.Base) {
			d.emit(Change{Op: Reuse, Path: p.Child(0)})
		}
		return
	}
	if d.prev.At(p) != d.cur.At(p) || payloadDiffers(prev, cur) {
		d.emit(Change{Op: Update, Path: p, Style: d.cur.At(p)})
	} else {
		d.emit(Change{Op: Reuse, Path: p})
	}
	switch cur := cur.(type) {
	case *view.Modified:
		d.diff(prev.(*view.Modified).Base, cur.Base, p.Child(0))
	case *view.Composite:
		prev := prev.(*view.Composite)
		for i, c := range cur.Children {
			d.diff(prev.Children[i], c, p.Child(i))
		}
	}
}

func (d *differ) emit(c Change) { d.changes = append(d.changes, c) }

// comparable reports whether two nodes have the same structural shape.
func comparable(prev, cur view.Node) bool {
	switch prev := prev.(type) {
	case *view.Leaf:
		cur, ok := cur.(*view.Leaf)
		return ok && prev.Kind == cur.Kind
	case *view.Composite:
		cur, ok := cur.(*view.Composite)
		return ok && prev.Kind == cur.Kind && prev.Arity == cur.Arity &&
			len(prev.Children) == len(cur.Children)
	case *view.Modified:
		cur, ok := cur.(*view.Modified)
		return ok && comparable(prev.Base, cur.Base)
	}
	return false
}

// payloadDiffers reports content changes invisible to the resolved style: a
// text edit, a different color or shape, or a stack changing axis.
func payloadDiffers(prev, cur view.Node) bool {
	switch prev := prev.(type) {
	case *view.Leaf:
		cur := cur.(*view.Leaf)
		return *prev != *cur
	case *view.Composite:
		cur := cur.(*view.Composite)
		return prev.Axis != cur.Axis
	}
	return false
}
