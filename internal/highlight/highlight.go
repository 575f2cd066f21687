// Package highlight turns source code into terminal-styled lines.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/bash/md/internal/debuglog"
	"github.com/bash/md/internal/termstyle"
)

// DefaultStyle names the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Highlighter styles code with a chroma style. It is safe for concurrent
// use.
type Highlighter struct {
	style *chroma.Style
}

// New returns a Highlighter using the named chroma style, or the default
// style when the name is unknown.
func New(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Highlighter{style: styles.Get(styleName)}
}

// Lines highlights code and returns one styled string per line, each ending
// in a reset when it carries styling. ok is false when no lexer matched the
// language or the content; the caller then renders the code its own way.
func (h *Highlighter) Lines(code, language string) (lines []string, ok bool, err error) {
	lexer := lexerFor(language, code)
	if lexer == nil {
		return nil, false, nil
	}
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, code)
	if err != nil {
		return nil, false, fmt.Errorf("highlight: %s: %w", lexer.Config().Name, err)
	}
	base := h.style.Get(chroma.Text).Colour
	for _, line := range chroma.SplitTokensIntoLines(tokens) {
		var b strings.Builder
		for _, tok := range line {
			if tok.Type == chroma.EOFType {
				continue
			}
			value := strings.TrimRight(tok.Value, "\n")
			if value == "" {
				continue
			}
			b.WriteString(styleOf(h.style.Get(tok.Type), base).Render(value))
		}
		lines = append(lines, b.String())
	}
	// Code ending in a newline yields no extra empty line.
	if n := len(lines); n > 0 && lines[n-1] == "" && strings.HasSuffix(code, "\n") {
		lines = lines[:n-1]
	}
	return lines, true, nil
}

func styleOf(entry chroma.StyleEntry, base chroma.Colour) termstyle.Style {
	s := termstyle.New()
	if entry.Bold == chroma.Yes {
		s = s.Bold()
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic()
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline()
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		s = s.Fg(termstyle.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	return s
}

// lexerFor resolves the fence language, then guesses from the content.
func lexerFor(language, code string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
		debuglog.Log("highlight: no lexer for %q", language)
	}
	if name := Guess(code); name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	return lexers.Analyse(code)
}

// Guess names the language of code from a shebang or editor modeline. It
// returns "" when neither is present.
func Guess(code string) string {
	content := []byte(code)
	if lang, _ := enry.GetLanguageByShebang(content); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByModeline(content); lang != "" {
		return lang
	}
	return ""
}

// Language extracts the language name from a code fence info string such as
// "rust,ignore" or "{.python .numberLines}".
func Language(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	lang := strings.TrimLeft(fields[0], "{.")
	lang = strings.TrimRight(lang, "}")
	if i := strings.IndexByte(lang, ','); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
