// Package termstyle models terminal text styles as comparable values and
// renders them as SGR escape sequences.
package termstyle

import "strconv"

// Reset clears every SGR attribute.
const Reset = "\x1b[0m"

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorANSI
	colorIndexed
	colorRGB
)

// Color is a foreground, background or underline color. The zero value is
// unset.
type Color struct {
	kind    colorKind
	n       uint8
	r, g, b uint8
}

// The eight basic colors and their bright variants.
var (
	Black   = ANSI(0)
	Red     = ANSI(1)
	Green   = ANSI(2)
	Yellow  = ANSI(3)
	Blue    = ANSI(4)
	Magenta = ANSI(5)
	Cyan    = ANSI(6)
	White   = ANSI(7)

	BrightBlack   = ANSI(8)
	BrightRed     = ANSI(9)
	BrightGreen   = ANSI(10)
	BrightYellow  = ANSI(11)
	BrightBlue    = ANSI(12)
	BrightMagenta = ANSI(13)
	BrightCyan    = ANSI(14)
	BrightWhite   = ANSI(15)
)

// ANSI returns one of the 16 terminal palette colors. Values above 15 wrap.
func ANSI(n uint8) Color {
	return Color{kind: colorANSI, n: n % 16}
}

// Indexed returns a color from the 256-color palette.
func Indexed(n uint8) Color {
	return Color{kind: colorIndexed, n: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c names a color.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

func (c Color) or(fallback Color) Color {
	if c.IsSet() {
		return c
	}
	return fallback
}

// param returns the SGR parameters selecting c, where base is 30 for
// foreground, 40 for background and 50 for underline colors.
func (c Color) param(base int) string {
	switch c.kind {
	case colorANSI:
		if base == 50 {
			return "58;5;" + strconv.Itoa(int(c.n))
		}
		if c.n < 8 {
			return strconv.Itoa(base + int(c.n))
		}
		return strconv.Itoa(base + 60 + int(c.n-8))
	case colorIndexed:
		return strconv.Itoa(base+8) + ";5;" + strconv.Itoa(int(c.n))
	case colorRGB:
		return strconv.Itoa(base+8) + ";2;" +
			strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	}
	return ""
}

// Effects is a set of text attributes.
type Effects uint16

const (
	Bold Effects = 1 << iota
	Dimmed
	Italic
	Underline
	Blink
	Invert
	Hidden
	Strikethrough
)

var effectCodes = [...]struct {
	effect Effects
	code   string
}{
	{Bold, "1"},
	{Dimmed, "2"},
	{Italic, "3"},
	{Underline, "4"},
	{Blink, "5"},
	{Invert, "7"},
	{Hidden, "8"},
	{Strikethrough, "9"},
}

// Style is a set of effects plus optional colors. The zero value is plain.
type Style struct {
	fg        Color
	bg        Color
	underline Color
	effects   Effects
}

// New returns a plain style.
func New() Style { return Style{} }

// Fg returns s with foreground color c.
func (s Style) Fg(c Color) Style {
	s.fg = c
	return s
}

// Bg returns s with background color c.
func (s Style) Bg(c Color) Style {
	s.bg = c
	return s
}

// UnderlineColor returns s with underline color c.
func (s Style) UnderlineColor(c Color) Style {
	s.underline = c
	return s
}

// With returns s with the effects e added.
func (s Style) With(e Effects) Style {
	s.effects |= e
	return s
}

func (s Style) Bold() Style          { return s.With(Bold) }
func (s Style) Dimmed() Style        { return s.With(Dimmed) }
func (s Style) Italic() Style        { return s.With(Italic) }
func (s Style) Underline() Style     { return s.With(Underline) }
func (s Style) Invert() Style        { return s.With(Invert) }
func (s Style) Strikethrough() Style { return s.With(Strikethrough) }

// Foreground returns the foreground color, which may be unset.
func (s Style) Foreground() Color { return s.fg }

// Background returns the background color, which may be unset.
func (s Style) Background() Color { return s.bg }

// Effects returns the effect set.
func (s Style) Effects() Effects { return s.effects }

// Has reports whether every effect in e is set.
func (s Style) Has(e Effects) bool { return s.effects&e == e }

// IsPlain reports whether s renders as nothing.
func (s Style) IsPlain() bool { return s == Style{} }

// OnTopOf layers s over fallback. Effects accumulate; each color is taken
// from s when set and from fallback otherwise.
func (s Style) OnTopOf(fallback Style) Style {
	return Style{
		fg:        s.fg.or(fallback.fg),
		bg:        s.bg.or(fallback.bg),
		underline: s.underline.or(fallback.underline),
		effects:   s.effects | fallback.effects,
	}
}

// AppendSGR appends the escape sequence selecting s to dst. A plain style
// appends nothing.
func (s Style) AppendSGR(dst []byte) []byte {
	if s.IsPlain() {
		return dst
	}
	dst = append(dst, "\x1b["...)
	first := true
	param := func(p string) {
		if p == "" {
			return
		}
		if !first {
			dst = append(dst, ';')
		}
		dst = append(dst, p...)
		first = false
	}
	for _, ec := range effectCodes {
		if s.effects&ec.effect != 0 {
			param(ec.code)
		}
	}
	param(s.fg.param(30))
	param(s.bg.param(40))
	param(s.underline.param(50))
	return append(dst, 'm')
}

// String returns the escape sequence selecting s.
func (s Style) String() string {
	if s.IsPlain() {
		return ""
	}
	var buf [32]byte
	return string(s.AppendSGR(buf[:0]))
}

// Render wraps text in s and a trailing Reset. Plain styles return text
// unchanged.
func (s Style) Render(text string) string {
	if s.IsPlain() {
		return text
	}
	return s.String() + text + Reset
}
