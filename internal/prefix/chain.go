package prefix

import (
	"io"
	"strings"

	"github.com/bash/md/internal/termstyle"
)

// Chain is a stack of prefixes from the document root down to the current
// block. Linking never changes the parent, so sibling blocks can branch from
// the same node.
type Chain struct {
	parent *Chain
	prefix *Prefix
	style  termstyle.Style
	width  int
}

// Root returns an empty chain with the given base style.
func Root(style termstyle.Style) *Chain {
	return &Chain{style: style}
}

// Link returns a child chain adding p below c. style is layered over the
// style of c and applies to the child's prefix faces and content.
func (c *Chain) Link(p Prefix, style termstyle.Style) *Chain {
	return &Chain{
		parent: c,
		prefix: &p,
		style:  style.OnTopOf(c.style),
		width:  c.width + p.Width(),
	}
}

// Reborrow returns an alias of c for a scope that adds no prefix level. The
// alias shares first-line state with c.
func (c *Chain) Reborrow() *Chain {
	alias := *c
	return &alias
}

// WithStyle returns an alias of c whose style is layered over c's.
func (c *Chain) WithStyle(style termstyle.Style) *Chain {
	alias := *c
	alias.style = style.OnTopOf(c.style)
	return &alias
}

// Width returns the total width of every level.
func (c *Chain) Width() int {
	return c.width
}

// Style returns the accumulated style.
func (c *Chain) Style() termstyle.Style {
	return c.style
}

// Depth returns the number of prefix levels.
func (c *Chain) Depth() int {
	n := 0
	for node := c; node != nil; node = node.parent {
		if node.prefix != nil {
			n++
		}
	}
	return n
}

// DisplayNext writes the prefix of the next line, root first, consuming the
// first face of every level that has not shown one yet. It must be called
// once per line.
func (c *Chain) DisplayNext(w io.Writer) error {
	if c == nil {
		return nil
	}
	if err := c.parent.DisplayNext(w); err != nil {
		return err
	}
	if c.prefix == nil {
		return nil
	}
	face := c.prefix.TakeNext().OnTopOf(c.style)
	if face.Text == "" {
		return nil
	}
	_, err := io.WriteString(w, face.String())
	return err
}

// Next returns what DisplayNext would write, with the same side effect.
func (c *Chain) Next() string {
	var b strings.Builder
	_ = c.DisplayNext(&b)
	return b.String()
}
