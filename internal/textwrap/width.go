package textwrap

import "github.com/mattn/go-runewidth"

// condition measures for a monospace terminal in a non East Asian locale.
var condition = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}()

// measure is swapped out by tests to count computations.
var measure = func(s string) int {
	return condition.StringWidth(s)
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return measure(s)
}

// Text is a string whose display width is computed at most once.
type Text struct {
	s        string
	width    int
	measured bool
}

// NewText wraps s. Its width is measured on first use.
func NewText(s string) Text {
	return Text{s: s}
}

func textWithWidth(s string, width int) Text {
	return Text{s: s, width: width, measured: true}
}

// Width returns the display width of the text, measuring it on the first
// call only.
func (t *Text) Width() int {
	if !t.measured {
		t.width = measure(t.s)
		t.measured = true
	}
	return t.width
}

// String returns the wrapped string.
func (t Text) String() string {
	return t.s
}

// IsEmpty reports whether the text has no bytes.
func (t Text) IsEmpty() bool {
	return t.s == ""
}
