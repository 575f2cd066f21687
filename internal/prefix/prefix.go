// Package prefix models the decoration written at the start of every output
// line: quote bars, list markers and their continuation indentation, nested
// to any depth.
package prefix

import (
	"strings"

	"github.com/bash/md/internal/termstyle"
	"github.com/bash/md/internal/textwrap"
)

// firstFace is shown on the first line only. take hands it out once.
type firstFace struct {
	face  termstyle.Styled
	taken bool
}

func (f *firstFace) take() (termstyle.Styled, bool) {
	if f.taken {
		return termstyle.Styled{}, false
	}
	f.taken = true
	return f.face, true
}

// Prefix is one level of line decoration. The first line under it shows the
// first face, every following line the rest face.
type Prefix struct {
	first firstFace
	rest  termstyle.Styled
	width int
}

// New returns a prefix with distinct first and rest faces. Its width is
// that of rest.
func New(first, rest termstyle.Styled) Prefix {
	return Prefix{
		first: firstFace{face: first},
		rest:  rest,
		width: textwrap.Width(rest.Text),
	}
}

// Uniform returns a prefix that shows s on every line.
func Uniform(s termstyle.Styled) Prefix {
	return New(s, s)
}

// Continued returns a prefix that shows first on the first line and blank
// padding of the same width afterwards.
func Continued(first termstyle.Styled) Prefix {
	pad := termstyle.Styled{
		Text:  strings.Repeat(" ", textwrap.Width(first.Text)),
		Style: first.Style,
	}
	return New(first, pad)
}

// Width returns the width of the rest face.
func (p *Prefix) Width() int {
	return p.width
}

// IsEmpty reports whether the prefix shows nothing on any line.
func (p *Prefix) IsEmpty() bool {
	return p.first.face.Text == "" && p.rest.Text == ""
}

// TakeNext returns the face for the next line: the first face on the first
// call, the rest face thereafter.
func (p *Prefix) TakeNext() termstyle.Styled {
	if face, ok := p.first.take(); ok {
		return face
	}
	return p.rest
}
