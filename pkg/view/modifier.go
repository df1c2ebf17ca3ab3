package view

import "fmt"

// Channel distinguishes the two ways a modifier's value flows through a
// tree. Direct values accumulate across nested applications; Environment
// values propagate to descendants until a descendant supplies its own value
// for the same name.
type Channel uint8

const (
	Direct Channel = iota
	Environment
)

func (c Channel) String() string {
	if c == Environment {
		return "env"
	}
	return "direct"
}

// Modifier changes how a subtree resolves. Value is a scalar: float64, bool
// or string, depending on Name.
type Modifier struct {
	Channel Channel
	Name    string
	Value   any
}

func (m Modifier) String() string {
	if m.Channel == Environment {
		return fmt.Sprintf("env:%s=%v", m.Name, m.Value)
	}
	return fmt.Sprintf("%s=%v", m.Name, m.Value)
}

// Names of the built-in modifiers. Direct and Environment names are disjoint
// sets; resolution treats the two channels separately.
const (
	NameBlur    = "blur"
	NamePadding = "padding"
	NameOpacity = "opacity"
	NameBold    = "bold"

	NameFont       = "font"
	NameForeground = "foreground"
	NameTextSize   = "text-size"
)

// Blur returns a direct modifier whose radius accumulates additively across
// nested applications.
func Blur(radius float64) Modifier {
	return Modifier{Channel: Direct, Name: NameBlur, Value: radius}
}

// Padding returns a direct modifier whose amount accumulates additively.
func Padding(amount float64) Modifier {
	return Modifier{Channel: Direct, Name: NamePadding, Value: amount}
}

// Opacity returns a direct modifier; the innermost application wins.
func Opacity(o float64) Modifier {
	return Modifier{Channel: Direct, Name: NameOpacity, Value: o}
}

// Bold returns a direct modifier; the innermost application wins.
func Bold(b bool) Modifier {
	return Modifier{Channel: Direct, Name: NameBold, Value: b}
}

// Font returns an environment modifier: descendants inherit the font name
// unless a nearer Font application overrides it.
func Font(name string) Modifier {
	return Modifier{Channel: Environment, Name: NameFont, Value: name}
}

// Foreground returns an environment modifier for the foreground color.
func Foreground(color string) Modifier {
	return Modifier{Channel: Environment, Name: NameForeground, Value: color}
}

// TextSize returns an environment modifier for the text size.
func TextSize(points float64) Modifier {
	return Modifier{Channel: Environment, Name: NameTextSize, Value: points}
}
