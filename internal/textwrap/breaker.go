package textwrap

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

type opportunity uint8

const (
	// noBreak marks the unterminated tail of the input seen so far.
	noBreak opportunity = iota
	allowed
	mandatory
)

// fragment is a piece of text ending at a break opportunity, or the
// unterminated tail of the input when op is noBreak. inCarry is set when the
// opportunity lies within text reported by an earlier call.
type fragment struct {
	text    string
	op      opportunity
	inCarry bool
}

// breaker finds UAX #14 line break opportunities in text that arrives in
// pieces. The tail after the last opportunity is carried over so a word
// split across several calls is still classified as one word.
type breaker struct {
	carry string
}

// split reports every fragment of s that ends at a break opportunity,
// followed by the unterminated tail (as noBreak) if there is one. Fragments
// never include a trailing line terminator.
func (b *breaker) split(s string, yield func(fragment) error) error {
	if s == "" {
		return nil
	}
	full := b.carry + s
	base := len(b.carry)
	b.carry = ""
	state := -1
	for pos := 0; pos < len(full); {
		segment, rest, must, next := uniseg.FirstLineSegmentInString(full[pos:], state)
		state = next
		end := pos + len(segment)
		if rest == "" && !endsWithHardBreak(segment) {
			// The end of the input is not the end of the text, so whether a
			// break follows is unknown until more text arrives.
			b.carry = full[pos:]
			return yield(fragment{text: full[max(pos, base):], op: noBreak})
		}
		op := allowed
		piece := full[max(pos, base):max(end, base)]
		if must {
			op = mandatory
			piece = trimLineTerminator(piece)
		}
		if err := yield(fragment{text: piece, op: op, inCarry: end <= base}); err != nil {
			return err
		}
		pos = end
	}
	return nil
}

func (b *breaker) reset() {
	b.carry = ""
}

func endsWithHardBreak(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case '\n', '\v', '\f', '\u0085', ' ', ' ':
		return true
	}
	return false
}

func trimLineTerminator(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	r, size := utf8.DecodeLastRuneInString(s)
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', ' ', ' ':
		return s[:len(s)-size]
	}
	return s
}
