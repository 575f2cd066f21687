package inline

import (
	"io"

	"github.com/bash/md/internal/termstyle"
	"github.com/bash/md/internal/textwrap"
)

// PrefixFunc writes the decoration for a new line.
type PrefixFunc func(w io.Writer) error

// Writer lays out inline content within a fixed width and writes it to an
// underlying writer. The style stack and hyperlink state persist across
// lines: every line starts by reasserting them and ends by resetting them.
type Writer struct {
	out    io.Writer
	layout *textwrap.Layouter[Inline]
	styles *termstyle.Stack
	prefix PrefixFunc
	emit   textwrap.EmitFunc[Inline]

	link   string
	linkID int
}

// NewWriter returns a Writer starting in style, wrapping at maxWidth and
// calling prefix at the start of every line. prefix may be nil.
func NewWriter(out io.Writer, style termstyle.Style, maxWidth int, prefix PrefixFunc) *Writer {
	w := &Writer{
		out:    out,
		layout: textwrap.NewLayouter[Inline](maxWidth),
		styles: termstyle.NewStack(style),
		prefix: prefix,
	}
	w.emit = w.writeChunk
	return w
}

// Style returns the effective style.
func (w *Writer) Style() termstyle.Style {
	return w.styles.Head()
}

// Write lays out in. Output up to the last complete word may be written.
func (w *Writer) Write(in Inline) error {
	var raw textwrap.RawChunk[Inline]
	switch in.Kind {
	case KindText:
		raw = textwrap.RawText[Inline](in.Text)
	case KindSoftBreak:
		raw = textwrap.SoftBreak[Inline]()
	case KindHardBreak:
		raw = textwrap.HardBreak[Inline]()
	default:
		raw = textwrap.RawPassthrough(in)
	}
	return w.layout.Chunk(raw, w.emit)
}

// WriteAll writes each value in turn.
func (w *Writer) WriteAll(ins ...Inline) error {
	for _, in := range ins {
		if err := w.Write(in); err != nil {
			return err
		}
	}
	return nil
}

// End flushes the last line. The Writer must not be used afterwards.
func (w *Writer) End() error {
	err := w.layout.End(w.emit)
	w.link = ""
	return err
}

func (w *Writer) writeChunk(c textwrap.Chunk[Inline]) error {
	switch c.Kind {
	case textwrap.KindLineStart:
		if w.prefix != nil {
			if err := w.prefix(w.out); err != nil {
				return err
			}
		}
		if err := w.writeString(w.styles.Head().String()); err != nil {
			return err
		}
		if w.link != "" {
			return w.writeString(LinkOpen(w.linkID, w.link))
		}
		return nil
	case textwrap.KindText:
		return w.writeString(c.Text.String())
	case textwrap.KindPassthrough:
		return w.apply(c.Passthrough)
	case textwrap.KindLineEnd:
		if !w.styles.Head().IsPlain() {
			if err := w.writeString(termstyle.Reset); err != nil {
				return err
			}
		}
		if w.link != "" {
			if err := w.writeString(LinkClose); err != nil {
				return err
			}
		}
		return w.writeString("\n")
	}
	return nil
}

func (w *Writer) apply(in Inline) error {
	switch in.Kind {
	case KindPushStyle:
		w.styles.Push(in.Style.OnTopOf(w.styles.Head()))
		return w.writeString(w.styles.Head().String())
	case KindPopStyle:
		w.styles.Pop()
		return w.writeString(termstyle.Reset + w.styles.Head().String())
	case KindSetLink:
		if w.link != "" {
			panic("inline: hyperlink set while another is open")
		}
		w.linkID++
		w.link = in.URL
		return w.writeString(LinkOpen(w.linkID, w.link))
	case KindUnsetLink:
		if w.link == "" {
			return nil
		}
		w.link = ""
		return w.writeString(LinkClose)
	}
	return nil
}

func (w *Writer) writeString(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w.out, s)
	return err
}
