package md

import (
	"io"
	"strings"

	"github.com/bash/md/internal/debuglog"
	"github.com/bash/md/internal/highlight"
	"github.com/bash/md/internal/termstyle"
)

// renderer writes the blocks of one document.
type renderer struct {
	st  *state
	w   io.Writer
	cur *cursor
}

func (r *renderer) document() error {
	ctx := rootContext(r.st)
	for {
		ev, ok := r.cur.next()
		if !ok {
			break
		}
		if err := r.blockFrom(ev, ctx); err != nil {
			return err
		}
	}
	return r.collectedFootnotes(ctx)
}

// blockFrom renders the block started by ev. Stray inline events are
// dropped.
func (r *renderer) blockFrom(ev event, ctx *blockContext) error {
	handled, err := r.tryBlock(ev, ctx)
	if err != nil {
		return err
	}
	if !handled {
		debuglog.Log("render: unexpected event %d/%d in block context", ev.kind, ev.tag)
	}
	return nil
}

// tryBlock renders the block started by ev and reports false when ev does
// not start a block.
func (r *renderer) tryBlock(ev event, ctx *blockContext) (bool, error) {
	if ev.kind == eventRule {
		return true, r.render(blockRule, ctx, func() error { return r.rule(ctx) })
	}
	if ev.kind != eventStart {
		return false, nil
	}
	switch ev.tag {
	case tagParagraph:
		return true, r.render(blockParagraph, ctx, func() error { return r.paragraph(ctx) })
	case tagHeading:
		return true, r.render(blockHeading, ctx, func() error { return r.heading(ev.level, ctx) })
	case tagBlockQuote:
		return true, r.render(blockQuote, ctx, func() error { return r.blockQuote(ev.alert, ctx) })
	case tagCodeBlock:
		return true, r.render(blockCode, ctx, func() error { return r.codeBlock(ev, ctx) })
	case tagList:
		return true, r.render(blockList, ctx, func() error { return r.list(ev, ctx) })
	case tagTable:
		return true, r.render(blockTable, ctx, func() error { return r.table(ctx) })
	case tagFootnoteDef:
		return true, r.render(blockFootnoteDef, ctx, func() error { return r.footnoteDef(ev.text, ctx) })
	}
	return false, nil
}

// render separates the block from the previous one in ctx by a blank line
// unless the block is empty.
func (r *renderer) render(kind blockKind, ctx *blockContext, body func() error) error {
	if ctx.previous != 0 && !r.isBlank(kind) {
		if err := ctx.writeBlankLine(r.w); err != nil {
			return err
		}
	}
	if err := body(); err != nil {
		return err
	}
	ctx.previous = kind
	return nil
}

func (r *renderer) isBlank(kind blockKind) bool {
	switch kind {
	case blockRule, blockTable:
		return false
	case blockFootnoteDef:
		if r.st.cfg.footnotes != FootnotesInPlace {
			return true
		}
	}
	next, ok := r.cur.peek()
	return ok && next.kind == eventEnd
}

func (r *renderer) paragraph(ctx *blockContext) error {
	return r.inlinesUntil(tagParagraph, ctx)
}

// inlinesUntil writes inline events up to the end of t through one writer.
func (r *renderer) inlinesUntil(t tag, ctx *blockContext) error {
	sink := ctx.inlineWriter(r.w)
	for {
		ev, ok := r.cur.until(t)
		if !ok {
			break
		}
		handled, err := sink.write(ev)
		if err != nil {
			return err
		}
		if !handled {
			debuglog.Log("render: unexpected event %d/%d in inline context", ev.kind, ev.tag)
		}
	}
	return sink.end()
}

func (r *renderer) codeBlock(start event, ctx *blockContext) error {
	var code strings.Builder
	for {
		ev, ok := r.cur.until(tagCodeBlock)
		if !ok {
			break
		}
		if ev.kind == eventText {
			code.WriteString(ev.text)
		}
	}
	var language string
	if start.fenced {
		language = highlight.Language(start.text)
	}
	for _, line := range r.codeLines(code.String(), language) {
		if err := ctx.writePrefix(r.w); err != nil {
			return err
		}
		if _, err := io.WriteString(r.w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// codeLines highlights code when possible and styles it as plain code
// otherwise.
func (r *renderer) codeLines(code, language string) []string {
	if h := r.st.highlighter; h != nil {
		lines, ok, err := h.Lines(code, language)
		if err != nil {
			debuglog.Log("render: %v", err)
		}
		if ok && err == nil {
			return lines
		}
	}
	code = strings.TrimSuffix(code, "\n")
	if code == "" {
		return nil
	}
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = r.st.styles.CodeBlock.Render(line)
	}
	return lines
}

func (r *renderer) rule(ctx *blockContext) error {
	edge, line := "◈", "─"
	if !r.st.cfg.symbols.unicode() {
		edge, line = "*", "-"
	}
	rule := edge + strings.Repeat(line, max(ctx.availableWidth()-2, 0)) + edge
	if err := ctx.writePrefix(r.w); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, r.st.styles.ThematicBreak.Render(rule)+"\n")
	return err
}

// table writes a placeholder; tables are not laid out yet.
func (r *renderer) table(ctx *blockContext) error {
	r.cur.skip(tagTable)
	if err := ctx.writePrefix(r.w); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, r.st.styles.Unsupported.String()+"[TODO: table]"+termstyle.Reset+"\n")
	return err
}
