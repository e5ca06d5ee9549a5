// Package text models styled chat text: a component holds content, an optional
// color, decorations and child components rendered after the content.
package text

import "strings"

// Decoration is a text style toggle
type Decoration uint8

const (
	Bold Decoration = 1 << iota
	Italic
	Underlined
	Strikethrough
	Obfuscated
)

// Component is an immutable piece of styled text. Methods return modified copies.
type Component struct {
	content     string
	color       Color
	decorations Decoration
	children    []Component
}

// Plain creates an unstyled component
func Plain(content string) Component {
	return Component{content: content}
}

// Colored creates a component with the given color
func Colored(content string, c Color) Component {
	return Component{content: content, color: c}
}

// Empty returns a component with no content
func Empty() Component {
	return Component{}
}

// Color returns a copy with the color replaced
func (c Component) Color(col Color) Component {
	c.color = col
	return c
}

// Decorate returns a copy with the decorations added
func (c Component) Decorate(d ...Decoration) Component {
	for _, dec := range d {
		c.decorations |= dec
	}
	return c
}

// Append returns a copy with child appended
func (c Component) Append(child Component) Component {
	children := make([]Component, len(c.children), len(c.children)+1)
	copy(children, c.children)
	c.children = append(children, child)
	return c
}

// Content returns the component's own text, without children
func (c Component) Content() string { return c.content }

// TextColor returns the component's own color
func (c Component) TextColor() Color { return c.color }

// HasDecoration reports whether d is set on the component itself
func (c Component) HasDecoration(d Decoration) bool { return c.decorations&d != 0 }

// Children returns a copy of the child components
func (c Component) Children() []Component {
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// PlainText flattens the component tree to unstyled text
func (c Component) PlainText() string {
	var sb strings.Builder
	c.writePlain(&sb)
	return sb.String()
}

func (c Component) writePlain(sb *strings.Builder) {
	sb.WriteString(c.content)
	for _, child := range c.children {
		child.writePlain(sb)
	}
}

// Equal reports deep equality of content, style and children
func (c Component) Equal(o Component) bool {
	if c.content != o.content || c.color != o.color || c.decorations != o.decorations {
		return false
	}
	if len(c.children) != len(o.children) {
		return false
	}
	for i := range c.children {
		if !c.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (c Component) String() string {
	return c.PlainText()
}
