package md

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
	"syscall"
)

var outputPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 32*1024)
	},
}

var configPool = sync.Pool{
	New: func() any {
		return &renderConfig{}
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Width is the number of output columns. It overrides WithColumns when
	// non-zero.
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads a Markdown document and writes it as styled terminal text.
// Write errors are returned wrapped, so a closed pager shows up as
// IsBrokenPipe.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := configPool.Get().(*renderConfig)
	*cfg = renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(cfg)
		}
	}
	cfgVal := *cfg
	configPool.Put(cfg)
	if req.Width > 0 {
		cfgVal.columns = req.Width
	}
	cfgVal.normalize()
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	src = stripFrontMatter(sanitize(src))
	events := parseEvents(src, cfgVal.footnotes == FootnotesInPlace)

	target := req.Writer
	var plain *plainWriter
	if cfgVal.plain {
		plain = &plainWriter{w: req.Writer}
		target = plain
	}
	out := outputPool.Get().(*bufio.Writer)
	out.Reset(target)
	r := &renderer{
		st:  newState(cfgVal, theme.Styles()),
		w:   out,
		cur: &cursor{events: events},
	}
	err = r.document()
	if err == nil {
		err = out.Flush()
	}
	if err == nil && plain != nil {
		err = plain.Close()
	}
	out.Reset(io.Discard)
	outputPool.Put(out)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// IsBrokenPipe reports whether err was caused by the reading end of the
// output going away, as when the user quits a pager early.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
