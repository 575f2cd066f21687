package md

import (
	"io"
	"sort"
	"strconv"

	"github.com/bash/md/internal/footnote"
	"github.com/bash/md/internal/prefix"
	"github.com/bash/md/internal/termstyle"
)

func (r *renderer) footnoteDef(label string, ctx *blockContext) error {
	inPlace := r.st.cfg.footnotes == FootnotesInPlace
	if inPlace {
		if err := r.footnoteDivider(ctx); err != nil {
			return err
		}
	}
	number := r.st.footnotes.Number(label)
	dctx := ctx.block(r.footnotePrefix(number), r.st.styles.FootnoteText)
	for {
		ev, ok := r.cur.until(tagFootnoteDef)
		if !ok {
			return nil
		}
		if !inPlace {
			r.st.collected[number] = append(r.st.collected[number], ev)
			continue
		}
		if err := r.blockFrom(ev, dctx); err != nil {
			return err
		}
	}
}

// collectedFootnotes writes the definitions gathered while rendering the
// body, in the order they were first referenced. A definition shows its
// number once; later blocks are indented under it.
func (r *renderer) collectedFootnotes(ctx *blockContext) error {
	if r.st.cfg.footnotes == FootnotesInPlace || r.st.footnotes.Len() == 0 {
		return nil
	}
	if err := ctx.writeBlankLine(r.w); err != nil {
		return err
	}
	if err := r.footnoteDivider(ctx); err != nil {
		return err
	}
	numbers := make([]int, 0, len(r.st.collected))
	for n := range r.st.collected {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	body := r.cur
	defer func() { r.cur = body }()
	for _, n := range numbers {
		r.cur = &cursor{events: r.st.collected[n]}
		dctx := ctx.block(r.footnotePrefix(n), r.st.styles.FootnoteText)
		for {
			ev, ok := r.cur.next()
			if !ok {
				break
			}
			if err := r.blockFrom(ev, dctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) footnoteDivider(ctx *blockContext) error {
	divider := "──────"
	if !r.st.cfg.symbols.unicode() {
		divider = "------"
	}
	if err := ctx.writePrefix(r.w); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, divider+"\n")
	return err
}

func (r *renderer) footnotePrefix(n int) prefix.Prefix {
	mark := footnote.Superscript(n) + noBreakSpace
	if !r.st.cfg.symbols.unicode() {
		mark = "[" + strconv.Itoa(n) + "]" + noBreakSpace
	}
	return prefix.Continued(termstyle.Styled{Text: mark, Style: r.st.styles.FootnoteMarker})
}
