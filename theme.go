package md

import (
	"sort"
	"strings"

	"github.com/bash/md/internal/highlight"
	"github.com/bash/md/internal/termstyle"
)

// Style is a terminal text style. The zero value is plain.
type Style = termstyle.Style

// Color is a terminal color for use in a Style.
type Color = termstyle.Color

// ANSIColor returns one of the 16 palette colors.
func ANSIColor(n uint8) Color { return termstyle.ANSI(n) }

// IndexedColor returns a color from the 256-color palette.
func IndexedColor(n uint8) Color { return termstyle.Indexed(n) }

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color { return termstyle.RGB(r, g, b) }

// AlertStyles colors block quotes by kind.
type AlertStyles struct {
	Note      Style
	Tip       Style
	Important Style
	Warning   Style
	Caution   Style
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Heading           [6]Style
	HeadingDecoration HeadingDecoration

	// QuoteBar is the prefix of every line inside a block quote. When
	// QuoteBarByKind is set it takes the color of the quote's kind.
	QuoteBar       string
	QuoteBarByKind bool
	Quote          Style
	Alerts         AlertStyles

	Emphasis      Style
	Strong        Style
	Strikethrough Style
	CodeInline    Style
	// CodeBlock styles code that is not highlighted.
	CodeBlock Style
	// CodeTheme names the chroma style used for highlighting.
	CodeTheme string

	ListMarker     Style
	Image          Style
	FootnoteRef    Style
	FootnoteMarker Style
	FootnoteText   Style
	ThematicBreak  Style
	Unsupported    Style
}

// Theme provides named styles for Markdown rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func baseStyles() Styles {
	return Styles{
		QuoteBar:       "┃ ",
		QuoteBarByKind: true,
		Alerts: AlertStyles{
			Note:      termstyle.New().Fg(termstyle.Blue),
			Tip:       termstyle.New().Fg(termstyle.Green),
			Important: termstyle.New().Fg(termstyle.Magenta),
			Warning:   termstyle.New().Fg(termstyle.Yellow),
			Caution:   termstyle.New().Fg(termstyle.Red),
		},
		Emphasis:       termstyle.New().Italic(),
		Strong:         termstyle.New().Bold(),
		Strikethrough:  termstyle.New().Strikethrough(),
		CodeInline:     termstyle.New().Fg(termstyle.Yellow).Italic(),
		CodeBlock:      termstyle.New().Italic(),
		CodeTheme:      highlight.DefaultStyle,
		ListMarker:     termstyle.New().Bold(),
		Image:          termstyle.New().Invert(),
		FootnoteRef:    termstyle.New().Fg(termstyle.Green),
		FootnoteMarker: termstyle.New().Bold(),
		FootnoteText:   termstyle.New().Dimmed(),
		Unsupported:    termstyle.New().Fg(termstyle.Red).Invert(),
	}
}

func defaultStyles() Styles {
	s := baseStyles()
	green := termstyle.New().Fg(termstyle.Green)
	blue := termstyle.New().Fg(termstyle.Blue)
	s.Heading = [6]Style{green.Bold().Underline(), green.Bold(), blue, blue, blue, blue}
	s.HeadingDecoration = HeadingsNumbered
	return s
}

func mdcatStyles() Styles {
	s := baseStyles()
	heading := termstyle.New().Fg(termstyle.Blue).Bold()
	s.Heading = [6]Style{heading, heading, heading, heading, heading, heading}
	s.HeadingDecoration = HeadingsPrefixed
	s.QuoteBar = "    "
	s.QuoteBarByKind = false
	s.Quote = termstyle.New().Italic()
	return s
}

func monochromeStyles() Styles {
	s := baseStyles()
	s.Heading = [6]Style{
		termstyle.New().Bold().Underline(),
		termstyle.New().Bold(),
		termstyle.New().Bold(),
		termstyle.New().Bold(),
		termstyle.New().Bold(),
		termstyle.New().Bold(),
	}
	s.HeadingDecoration = HeadingsNumbered
	s.Alerts = AlertStyles{}
	s.QuoteBarByKind = false
	s.CodeInline = termstyle.New().Italic()
	s.CodeTheme = "bw"
	s.FootnoteRef = termstyle.New().Bold()
	s.Unsupported = termstyle.New().Invert()
	return s
}

var builtinThemes = map[string]Theme{
	"default":    theme{name: "default", styles: defaultStyles()},
	"mdcat":      theme{name: "mdcat", styles: mdcatStyles()},
	"monochrome": theme{name: "monochrome", styles: monochromeStyles()},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

func (a AlertStyles) of(k alertKind) Style {
	switch k {
	case alertNote:
		return a.Note
	case alertTip:
		return a.Tip
	case alertImportant:
		return a.Important
	case alertWarning:
		return a.Warning
	case alertCaution:
		return a.Caution
	}
	return Style{}
}
