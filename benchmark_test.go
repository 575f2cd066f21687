package md

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

var benchDocument = strings.Repeat(`# Release notes

## Highlights

Prose with *emphasis*, **strong text**, `+"`code`"+` and [links](https://example.com/docs)
that wraps across several lines once the terminal gets narrow enough.

> [!TIP]
> Quotes nest their bars around wrapped text.

- first item
- second item
  - nested item with a longer body that needs wrapping at narrow widths
- [x] finished task

`+"```go\nfunc main() {\n\tprintln(\"hi\")\n}\n```"+`

A footnote reference[^note].

[^note]: The definition.

***
`, 20)

func BenchmarkRender(b *testing.B) {
	data := []byte(benchDocument)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	reader := bytes.NewReader(data)
	var out bytes.Buffer
	out.Grow(len(data) * 2)
	for b.Loop() {
		reader.Reset(data)
		out.Reset()
		_ = Render(RenderRequest{
			Reader: reader,
			Writer: &out,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	}
}

func BenchmarkRenderPlain(b *testing.B) {
	data := []byte(benchDocument)
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	for b.Loop() {
		reader.Reset(data)
		_ = Render(RenderRequest{
			Reader:  reader,
			Writer:  io.Discard,
			Width:   60,
			Options: []RenderOption{WithPlain(true), WithHighlighting(false)},
		})
	}
}
