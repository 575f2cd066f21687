package md

import (
	"strconv"

	"github.com/bash/md/internal/prefix"
	"github.com/bash/md/internal/termstyle"
)

var (
	unicodeBullets = []string{"•", "◦", "▪", "‣"}
	asciiBullets   = []string{"*", "-", "+"}
)

func bulletsFor(s SymbolRepertoire) []string {
	if s.unicode() {
		return unicodeBullets
	}
	return asciiBullets
}

func (r *renderer) list(start event, ctx *blockContext) error {
	number := start.start
	bullet := ctx.bullet()
	for {
		ev, ok := r.cur.until(tagList)
		if !ok {
			return nil
		}
		if !ev.isStart(tagItem) {
			continue
		}
		marker := bullet + " "
		if start.ordered {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		if err := r.item(marker, ctx); err != nil {
			return err
		}
	}
}

func (r *renderer) item(marker string, ctx *blockContext) error {
	p := prefix.Continued(termstyle.Styled{Text: marker, Style: r.st.styles.ListMarker})
	if next, ok := r.cur.peek(); ok && next.kind == eventTaskMarker {
		r.cur.next()
		p = prefix.Continued(termstyle.Plain(r.taskMarker(next.checked)))
	}
	ictx := ctx.block(p, termstyle.New())
	ictx.listDepth++
	return r.itemContents(ictx)
}

func (r *renderer) taskMarker(checked bool) string {
	switch {
	case !r.st.cfg.symbols.unicode() && checked:
		return "[x] "
	case !r.st.cfg.symbols.unicode():
		return "[ ] "
	case checked:
		return "☑ "
	}
	return "☐ "
}

// itemContents alternates between runs of inline content, each written
// through one writer, and nested blocks.
func (r *renderer) itemContents(ctx *blockContext) error {
	var sink *inlineSink
	for {
		ev, ok := r.cur.until(tagItem)
		if !ok {
			break
		}
		if isInline(ev) {
			if sink == nil {
				sink = ctx.inlineWriter(r.w)
			}
			if _, err := sink.write(ev); err != nil {
				return err
			}
			continue
		}
		if sink != nil {
			if err := sink.end(); err != nil {
				return err
			}
			sink = nil
		}
		if err := r.blockFrom(ev, ctx); err != nil {
			return err
		}
	}
	if sink != nil {
		return sink.end()
	}
	return nil
}
