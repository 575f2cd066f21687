package termstyle

// Styled is a string paired with the style it is displayed in.
type Styled struct {
	Text  string
	Style Style
}

// Plain returns text without styling.
func Plain(text string) Styled {
	return Styled{Text: text}
}

// OnTopOf returns s with its style layered over fallback.
func (s Styled) OnTopOf(fallback Style) Styled {
	return Styled{Text: s.Text, Style: s.Style.OnTopOf(fallback)}
}

// String renders the text, wrapped in the style and a reset unless the style
// is plain. Empty text renders as nothing.
func (s Styled) String() string {
	if s.Text == "" {
		return ""
	}
	return s.Style.Render(s.Text)
}
