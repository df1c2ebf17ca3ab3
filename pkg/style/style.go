// Package style computes the effective appearance of every node in a view
// tree.
//
// Resolution walks the tree top-down carrying two separate channels of
// modifier values. Environment values (font, foreground, text size) flow
// from ancestor to descendant, and the nearest application for a given name
// wins over any ancestor. Direct values instead combine across nested
// applications with a per-name combinator: blur and padding accumulate by
// summation, while opacity and bold are replaced by the latest application
// encountered on the way down. The two channels never interact, even for
// modifiers crafted with the same name on both.
package style

import (
	"fmt"
	"strings"

	"vtree.dev/pkg/view"
)

// Style is the resolved appearance of one node.
type Style struct {
	// Environment channel.
	Font       string  `json:"font,omitempty"`
	Foreground string  `json:"foreground,omitempty"`
	TextSize   float64 `json:"textSize,omitempty"`

	// Direct channel.
	Blur    float64 `json:"blur,omitempty"`
	Padding float64 `json:"padding,omitempty"`
	Opacity float64 `json:"opacity"`
	Bold    bool    `json:"bold,omitempty"`
}

// Default is the style of a node with no modifiers in scope.
func Default() Style { return Style{Opacity: 1} }

// String returns a compact listing of the fields that differ from Default,
// or "{}" if none do.
func (s Style) String() string {
	var parts []string
	add := func(name string, value any) {
		parts = append(parts, fmt.Sprintf("%s=%v", name, value))
	}
	if s.Font != "" {
		add("font", s.Font)
	}
	if s.Foreground != "" {
		add("fg", s.Foreground)
	}
	if s.TextSize != 0 {
		add("size", s.TextSize)
	}
	if s.Blur != 0 {
		add("blur", s.Blur)
	}
	if s.Padding != 0 {
		add("padding", s.Padding)
	}
	if s.Opacity != 1 {
		add("opacity", s.Opacity)
	}
	if s.Bold {
		add("bold", true)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Direct combinators, keyed by modifier name. Unknown names are ignored; the
// set of names is closed, matching the constructors in package view.
var directCombinators = map[string]func(s *Style, value any){
	view.NameBlur:    func(s *Style, v any) { s.Blur += toFloat(v) },
	view.NamePadding: func(s *Style, v any) { s.Padding += toFloat(v) },
	view.NameOpacity: func(s *Style, v any) { s.Opacity = toFloat(v) },
	view.NameBold:    func(s *Style, v any) { s.Bold = toBool(v) },
}

var envNames = map[string]bool{
	view.NameFont:       true,
	view.NameForeground: true,
	view.NameTextSize:   true,
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}
