package textwrap

import (
	"slices"
	"strings"
)

type buffered[P any] struct {
	text          Text
	passthrough   P
	isPassthrough bool
	// soft marks text that came from a soft break.
	soft bool
}

// buffer holds chunks of the word that has not reached a break opportunity
// yet. width is always the sum of the widths of the text chunks it holds.
type buffer[P any] struct {
	items []buffered[P]
	width int
}

func (b *buffer[P]) pushText(t Text, soft bool) {
	b.width += t.Width()
	b.items = append(b.items, buffered[P]{text: t, soft: soft})
}

func (b *buffer[P]) pushPassthrough(p P) {
	b.items = append(b.items, buffered[P]{passthrough: p, isPassthrough: true})
}

func (b *buffer[P]) empty() bool {
	return len(b.items) == 0
}

// trimTrailingSpaces removes the spaces at the end of the buffered text,
// looking past passthroughs, and returns how many it removed. Passthroughs
// keep their place, so they end up before the removed spaces.
func (b *buffer[P]) trimTrailingSpaces() int {
	removed := 0
	for i := len(b.items) - 1; i >= 0; i-- {
		it := &b.items[i]
		if it.isPassthrough {
			continue
		}
		s := it.text.String()
		if s == "" {
			continue
		}
		trimmed := strings.TrimRight(s, " ")
		n := len(s) - len(trimmed)
		if n == 0 {
			break
		}
		removed += n
		w := it.text.Width()
		b.width -= w
		if trimmed == "" {
			b.items = slices.Delete(b.items, i, i+1)
			continue
		}
		it.text = textWithWidth(trimmed, w-n)
		b.width += w - n
		break
	}
	return removed
}

// onlyInputSpaces reports whether the buffered text is nothing but spaces
// that were part of the input rather than soft breaks.
func (b *buffer[P]) onlyInputSpaces() bool {
	found := false
	for _, it := range b.items {
		if it.isPassthrough || it.text.IsEmpty() {
			continue
		}
		if it.soft || strings.TrimLeft(it.text.String(), " ") != "" {
			return false
		}
		found = true
	}
	return found
}

// trimLeadingSpaces drops soft breaks that precede the first visible text,
// looking past passthroughs. Other leading whitespace is kept.
func (b *buffer[P]) trimLeadingSpaces() {
	kept := b.items[:0]
	leading := true
	for _, it := range b.items {
		if leading && !it.isPassthrough {
			if it.soft && strings.TrimLeft(it.text.String(), " ") == "" {
				b.width -= it.text.Width()
				continue
			}
			if !it.text.IsEmpty() {
				leading = false
			}
		}
		kept = append(kept, it)
	}
	clear(b.items[len(kept):])
	b.items = kept
}

// takeTrailingPassthroughs removes and returns the passthroughs that arrived
// after the last buffered text.
func (b *buffer[P]) takeTrailingPassthroughs() []buffered[P] {
	i := len(b.items)
	for i > 0 && b.items[i-1].isPassthrough {
		i--
	}
	if i == len(b.items) {
		return nil
	}
	held := append([]buffered[P](nil), b.items[i:]...)
	clear(b.items[i:])
	b.items = b.items[:i]
	return held
}

func (b *buffer[P]) restore(held []buffered[P]) {
	b.items = append(b.items, held...)
}

// drain emits the buffered chunks in arrival order and empties the buffer.
func (b *buffer[P]) drain(emit EmitFunc[P]) error {
	items := b.items
	b.items = b.items[:0]
	b.width = 0
	defer clear(items)
	for _, it := range items {
		var err error
		if it.isPassthrough {
			err = emit(Chunk[P]{Kind: KindPassthrough, Passthrough: it.passthrough})
		} else {
			err = emit(Chunk[P]{Kind: KindText, Text: it.text})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *buffer[P]) reset() {
	clear(b.items)
	b.items = b.items[:0]
	b.width = 0
}
