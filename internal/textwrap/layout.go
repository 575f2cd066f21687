// Package textwrap lays out a stream of text and zero-width passthrough
// markers into lines of bounded display width, breaking only at Unicode
// line break opportunities.
package textwrap

import "strings"

// ChunkKind identifies the role of an output Chunk.
type ChunkKind uint8

const (
	KindLineStart ChunkKind = iota + 1
	KindText
	KindPassthrough
	KindLineEnd
)

func (k ChunkKind) String() string {
	switch k {
	case KindLineStart:
		return "LineStart"
	case KindText:
		return "Text"
	case KindPassthrough:
		return "Passthrough"
	case KindLineEnd:
		return "LineEnd"
	}
	return "ChunkKind(?)"
}

// Chunk is one unit of laid out output. Text is set for KindText and
// Passthrough for KindPassthrough.
type Chunk[P any] struct {
	Kind        ChunkKind
	Text        Text
	Passthrough P
}

// EmitFunc receives laid out chunks. A non-nil error aborts layout and is
// returned from the Layouter call that triggered it.
type EmitFunc[P any] func(Chunk[P]) error

// RawChunk is one unit of layout input: text that may contain break
// opportunities, or an opaque zero-width passthrough value.
type RawChunk[P any] struct {
	text          string
	passthrough   P
	isPassthrough bool
	soft          bool
}

// RawText returns a text input.
func RawText[P any](s string) RawChunk[P] {
	return RawChunk[P]{text: s}
}

// RawPassthrough returns a zero-width input carrying p.
func RawPassthrough[P any](p P) RawChunk[P] {
	return RawChunk[P]{passthrough: p, isPassthrough: true}
}

// SoftBreak renders as a single space and may be replaced by a line break.
func SoftBreak[P any]() RawChunk[P] {
	return RawChunk[P]{text: " ", soft: true}
}

// HardBreak always ends the current line.
func HardBreak[P any]() RawChunk[P] {
	return RawText[P]("\n")
}

// Layouter turns RawChunks into lines no wider than its maximum width,
// except where a single word is wider than the maximum. A Layouter is not
// safe for concurrent use.
type Layouter[P any] struct {
	maxWidth int
	used     int
	// pending counts the spaces that ended the last committed fragment.
	// They are only written once the next fragment is known to fit on the
	// same line, so a soft break at the wrap point takes no width.
	pending int
	breaks  breaker
	buf     buffer[P]
}

// NewLayouter returns a Layouter producing lines of at most maxWidth
// columns.
func NewLayouter[P any](maxWidth int) *Layouter[P] {
	return &Layouter[P]{maxWidth: maxWidth}
}

// MaxWidth returns the configured line width.
func (l *Layouter[P]) MaxWidth() int {
	return l.maxWidth
}

// Chunk lays out one input chunk.
func (l *Layouter[P]) Chunk(raw RawChunk[P], emit EmitFunc[P]) error {
	if raw.isPassthrough {
		return l.passthrough(raw.passthrough, emit)
	}
	return l.breaks.split(raw.text, func(f fragment) error {
		if f.op == noBreak {
			if f.text != "" {
				l.buf.pushText(NewText(f.text), raw.soft)
			}
			return nil
		}
		if !f.inCarry {
			return l.commit(f.text, raw.soft, f.op == mandatory, emit)
		}
		// The break sits where the buffered text ends, so passthroughs
		// received since then belong to the next fragment.
		held := l.buf.takeTrailingPassthroughs()
		err := l.commit(f.text, raw.soft, f.op == mandatory, emit)
		l.buf.restore(held)
		return err
	})
}

// End flushes the last unterminated fragment and closes the open line.
// Passthroughs that never reached a line are dropped. The Layouter can be
// reused afterwards.
func (l *Layouter[P]) End(emit EmitFunc[P]) error {
	err := l.commit("", false, true, emit)
	l.breaks.reset()
	l.buf.reset()
	l.used, l.pending = 0, 0
	return err
}

func (l *Layouter[P]) passthrough(p P, emit EmitFunc[P]) error {
	if l.buf.empty() && l.pending == 0 && l.used > 0 {
		return emit(Chunk[P]{Kind: KindPassthrough, Passthrough: p})
	}
	l.buf.pushPassthrough(p)
	return nil
}

func (l *Layouter[P]) commit(piece string, soft, mandatory bool, emit EmitFunc[P]) error {
	if piece != "" {
		l.buf.pushText(NewText(piece), soft)
	}
	// Spaces opening a line are content unless a soft break produced them.
	trailing := 0
	if l.used > 0 || !l.buf.onlyInputSpaces() {
		trailing = l.buf.trimTrailingSpaces()
	}
	total := l.buf.width

	if l.used > 0 && l.used+l.pending+total > l.maxWidth {
		if err := emit(Chunk[P]{Kind: KindLineEnd}); err != nil {
			return err
		}
		l.used, l.pending = 0, 0
	}
	if l.used == 0 {
		l.buf.trimLeadingSpaces()
		total = l.buf.width
	}

	if total > 0 || (l.used > 0 && !l.buf.empty()) {
		if l.used == 0 {
			if err := emit(Chunk[P]{Kind: KindLineStart}); err != nil {
				return err
			}
		} else if l.pending > 0 {
			space := textWithWidth(strings.Repeat(" ", l.pending), l.pending)
			if err := emit(Chunk[P]{Kind: KindText, Text: space}); err != nil {
				return err
			}
			l.used += l.pending
		}
		l.pending = 0
		if err := l.buf.drain(emit); err != nil {
			return err
		}
		l.used += total
	}

	if l.used > 0 {
		l.pending += trailing
	}

	if mandatory && l.used > 0 {
		if err := emit(Chunk[P]{Kind: KindLineEnd}); err != nil {
			return err
		}
		l.used, l.pending = 0, 0
	}
	return nil
}
