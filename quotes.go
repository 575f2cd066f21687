package md

import (
	"io"
	"strings"
	"unicode"

	"github.com/bash/md/internal/prefix"
	"github.com/bash/md/internal/termstyle"
)

// quoteKind is the kind of a block quote and whether it came from an alert
// marker or from a leading emoji.
type quoteKind struct {
	alert  alertKind
	markup bool
}

var alertEmoji = []struct {
	symbol string
	kind   alertKind
}{
	{"\u2139\ufe0f", alertNote},
	{"\U0001f4a1", alertTip},
	{"\U0001f4ac", alertImportant},
	{"\u26a0\ufe0f", alertWarning},
	{"\U0001f6d1", alertCaution},
}

// Titles of alert quotes, plain and with emoji. U+FE0F requests emoji
// presentation.
var alertTitles = map[alertKind][2]string{
	alertNote:      {"Note", "\u2139\ufe0f Note"},
	alertTip:       {"Tip", "\U0001f4a1 Tip"},
	alertImportant: {"Important", "\U0001f4ac Important"},
	alertWarning:   {"Warning", "\u26a0\ufe0f Warning"},
	alertCaution:   {"Caution", "\U0001f6d1 Caution"},
}

func (r *renderer) classifyQuote(marker alertKind) quoteKind {
	if marker != alertNone {
		return quoteKind{alert: marker, markup: true}
	}
	return quoteKind{alert: r.peekQuoteEmoji()}
}

// peekQuoteEmoji looks for one of the alert emoji at the very start of the
// first paragraph, ignoring emphasis and line breaks before it.
func (r *renderer) peekQuoteEmoji() alertKind {
	saved := r.cur.pos
	defer func() { r.cur.pos = saved }()
	if ev, ok := r.cur.next(); !ok || !ev.isStart(tagParagraph) {
		return alertNone
	}
	for {
		ev, ok := r.cur.next()
		if !ok {
			return alertNone
		}
		switch {
		case ev.isStart(tagEmphasis), ev.isStart(tagStrong), ev.kind == eventHardBreak:
			continue
		case ev.kind == eventText:
			text := strings.TrimLeftFunc(ev.text, unicode.IsSpace)
			for _, e := range alertEmoji {
				if strings.HasPrefix(text, e.symbol) {
					return e.kind
				}
			}
		}
		return alertNone
	}
}

func (r *renderer) blockQuote(marker alertKind, ctx *blockContext) error {
	kind := r.classifyQuote(marker)
	styles := &r.st.styles
	barStyle := termstyle.New()
	if styles.QuoteBarByKind {
		barStyle = styles.Alerts.of(kind.alert)
	}
	bar := styles.QuoteBar
	if !r.st.cfg.symbols.unicode() && bar == "┃ " {
		bar = "| "
	}
	qctx := ctx.block(prefix.Uniform(termstyle.Styled{Text: bar, Style: barStyle}), styles.Quote)

	if err := r.quoteTitle(kind, qctx); err != nil {
		return err
	}
	for {
		ev, ok := r.cur.until(tagBlockQuote)
		if !ok {
			break
		}
		if err := r.blockFrom(ev, qctx); err != nil {
			return err
		}
	}
	if author, ok := r.peekQuoteAuthor(); ok {
		return r.quoteAuthor(author, ctx)
	}
	return nil
}

func (r *renderer) quoteTitle(kind quoteKind, ctx *blockContext) error {
	if !kind.markup {
		return nil
	}
	titles, ok := alertTitles[kind.alert]
	if !ok {
		return nil
	}
	title := titles[0]
	if r.st.cfg.symbols.emoji() {
		title = titles[1]
	}
	if err := ctx.writePrefix(r.w); err != nil {
		return err
	}
	style := r.st.styles.Alerts.of(kind.alert).Bold()
	_, err := io.WriteString(r.w, style.String()+title+termstyle.Reset+"\n")
	return err
}

// peekQuoteAuthor consumes a bullet list of a single item holding only
// inline content that directly follows a quote.
func (r *renderer) peekQuoteAuthor() ([]event, bool) {
	saved := r.cur.pos
	if ev, ok := r.cur.next(); !ok || !ev.isStart(tagList) || ev.ordered {
		r.cur.pos = saved
		return nil, false
	}
	if ev, ok := r.cur.next(); !ok || !ev.isStart(tagItem) {
		r.cur.pos = saved
		return nil, false
	}
	var author []event
	for {
		ev, ok := r.cur.next()
		if !ok {
			r.cur.pos = saved
			return nil, false
		}
		if ev.isEnd(tagItem) {
			break
		}
		if !isInline(ev) {
			r.cur.pos = saved
			return nil, false
		}
		author = append(author, ev)
	}
	if ev, ok := r.cur.next(); !ok || !ev.isEnd(tagList) {
		r.cur.pos = saved
		return nil, false
	}
	return author, true
}

func (r *renderer) quoteAuthor(author []event, ctx *blockContext) error {
	actx := ctx.block(prefix.Continued(termstyle.Plain("    ― ")), termstyle.New())
	sink := actx.inlineWriter(r.w)
	for _, ev := range author {
		if _, err := sink.write(ev); err != nil {
			return err
		}
	}
	return sink.end()
}
