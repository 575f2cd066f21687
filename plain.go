package md

import (
	"bytes"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// plainWriter strips escape sequences from everything written through it.
// Output is processed a line at a time, so sequences never straddle a
// boundary.
type plainWriter struct {
	w    io.Writer
	line []byte
}

func (p *plainWriter) Write(b []byte) (int, error) {
	n := len(b)
	for len(b) > 0 {
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			p.line = append(p.line, b...)
			break
		}
		p.line = append(p.line, b[:i+1]...)
		if err := p.flushLine(); err != nil {
			return 0, err
		}
		b = b[i+1:]
	}
	return n, nil
}

// Close writes a trailing unterminated line.
func (p *plainWriter) Close() error {
	if len(p.line) == 0 {
		return nil
	}
	return p.flushLine()
}

func (p *plainWriter) flushLine() error {
	_, err := io.WriteString(p.w, ansi.Strip(string(p.line)))
	p.line = p.line[:0]
	return err
}
