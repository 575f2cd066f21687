package md

import (
	"io"

	"github.com/bash/md/internal/footnote"
	"github.com/bash/md/internal/highlight"
	"github.com/bash/md/internal/inline"
	"github.com/bash/md/internal/prefix"
	"github.com/bash/md/internal/termstyle"
)

type blockKind uint8

const (
	blockParagraph blockKind = iota + 1
	blockHeading
	blockCode
	blockQuote
	blockList
	blockRule
	blockTable
	blockFootnoteDef
)

// state is shared by every block of one render call.
type state struct {
	cfg         renderConfig
	styles      Styles
	sections    sectionCounter
	footnotes   footnote.Table
	collected   map[int][]event
	bullets     []string
	highlighter *highlight.Highlighter
}

func newState(cfg renderConfig, styles Styles) *state {
	st := &state{
		cfg:       cfg,
		styles:    styles,
		collected: make(map[int][]event),
		bullets:   bulletsFor(cfg.symbols),
	}
	if !cfg.noHighlight {
		st.highlighter = highlight.New(styles.CodeTheme)
	}
	return st
}

// blockContext describes where a block is rendered: the prefix of its lines,
// the style its content starts in and the block rendered before it at the
// same level.
type blockContext struct {
	prefix    *prefix.Chain
	style     termstyle.Style
	previous  blockKind
	listDepth int
	st        *state
}

func rootContext(st *state) *blockContext {
	return &blockContext{prefix: prefix.Root(termstyle.New()), st: st}
}

// block returns the context for a child block. p is added to the prefix
// unless it is empty and style is layered over the current style.
func (c *blockContext) block(p prefix.Prefix, style termstyle.Style) *blockContext {
	style = style.OnTopOf(c.style)
	chain := c.prefix.Reborrow()
	if !p.IsEmpty() {
		chain = c.prefix.Link(p, style)
	}
	return &blockContext{
		prefix:    chain,
		style:     style,
		listDepth: c.listDepth,
		st:        c.st,
	}
}

func (c *blockContext) availableWidth() int {
	return max(c.st.cfg.columns-c.prefix.Width(), 0)
}

func (c *blockContext) textWidth() int {
	return min(c.availableWidth(), c.st.cfg.textMaxColumns)
}

func (c *blockContext) bullet() string {
	return c.st.bullets[c.listDepth%len(c.st.bullets)]
}

func (c *blockContext) writePrefix(w io.Writer) error {
	return c.prefix.DisplayNext(w)
}

func (c *blockContext) writeBlankLine(w io.Writer) error {
	if err := c.writePrefix(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (c *blockContext) inlineWriter(w io.Writer) *inlineSink {
	return &inlineSink{
		w:  inline.NewWriter(w, c.style, c.textWidth(), c.prefix.DisplayNext),
		st: c.st,
	}
}
