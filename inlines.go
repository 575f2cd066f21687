package md

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/bash/md/internal/footnote"
	"github.com/bash/md/internal/inline"
)

const noBreakSpace = "\u00a0"

// inlineSink feeds inline events to an inline writer. Links nested inside
// links are flattened into the outer one.
type inlineSink struct {
	w     *inline.Writer
	st    *state
	links int
}

func isInline(ev event) bool {
	switch ev.kind {
	case eventText, eventCode, eventSoftBreak, eventHardBreak, eventHTML, eventFootnoteRef:
		return true
	case eventStart, eventEnd:
		switch ev.tag {
		case tagEmphasis, tagStrong, tagStrikethrough, tagLink, tagImage:
			return true
		}
	}
	return false
}

// write renders ev and reports false, writing nothing, when ev is not
// inline content.
func (s *inlineSink) write(ev event) (bool, error) {
	if !isInline(ev) {
		return false, nil
	}
	return true, s.w.WriteAll(s.inlines(ev)...)
}

func (s *inlineSink) end() error {
	return s.w.End()
}

func (s *inlineSink) inlines(ev event) []inline.Inline {
	styles := &s.st.styles
	switch ev.kind {
	case eventText:
		return []inline.Inline{inline.Text(ev.text)}
	case eventCode:
		return []inline.Inline{inline.PushStyle(styles.CodeInline), inline.Text(ev.text), inline.PopStyle()}
	case eventSoftBreak:
		return []inline.Inline{inline.SoftBreak()}
	case eventHardBreak:
		return []inline.Inline{inline.HardBreak()}
	case eventHTML:
		if isBreakTag(ev.text) {
			return []inline.Inline{inline.HardBreak()}
		}
		return nil
	case eventFootnoteRef:
		return []inline.Inline{
			inline.PushStyle(styles.FootnoteRef),
			inline.Text(s.footnoteMark(ev.text)),
			inline.PopStyle(),
		}
	case eventStart:
		switch ev.tag {
		case tagEmphasis:
			return []inline.Inline{inline.PushStyle(styles.Emphasis)}
		case tagStrong:
			return []inline.Inline{inline.PushStyle(styles.Strong)}
		case tagStrikethrough:
			return []inline.Inline{inline.PushStyle(styles.Strikethrough)}
		case tagImage:
			return []inline.Inline{inline.PushStyle(styles.Image), inline.Text(s.imageMark())}
		case tagLink:
			s.links++
			if s.links > 1 || !s.st.cfg.hyperlinks {
				return nil
			}
			if u := s.resolve(ev.text); u != "" {
				return []inline.Inline{inline.SetLink(u)}
			}
		}
	case eventEnd:
		switch ev.tag {
		case tagEmphasis, tagStrong, tagStrikethrough, tagImage:
			return []inline.Inline{inline.PopStyle()}
		case tagLink:
			s.links--
			if s.links == 0 {
				return []inline.Inline{inline.UnsetLink()}
			}
		}
	}
	return nil
}

func (s *inlineSink) footnoteMark(label string) string {
	n := s.st.footnotes.Number(label)
	if !s.st.cfg.symbols.unicode() {
		return "[" + strconv.Itoa(n) + "]"
	}
	return footnote.Superscript(n)
}

func (s *inlineSink) imageMark() string {
	if !s.st.cfg.symbols.unicode() {
		return "[image]" + noBreakSpace
	}
	return "🖼" + noBreakSpace
}

// resolve returns dest as an absolute URL, joining relative destinations to
// the base URL. It returns "" when dest cannot be resolved.
func (s *inlineSink) resolve(dest string) string {
	u, err := url.Parse(dest)
	if err == nil && u.IsAbs() {
		return u.String()
	}
	base := s.st.cfg.baseURL
	if base == nil || err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

func isBreakTag(html string) bool {
	html = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, html)
	return html == "<br>" || html == "<br/>"
}
