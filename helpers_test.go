package md

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderString renders src at width with hyperlinks and highlighting off
// unless opts say otherwise.
func renderString(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	base := []RenderOption{WithHyperlinks(false), WithHighlighting(false)}
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   DefaultTheme(),
		Options: append(base, opts...),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

// renderPlain renders src without any escape sequences.
func renderPlain(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	return renderString(t, src, width, append(opts, WithPlain(true))...)
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func assertOutput(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("unexpected output:\n got: %q\nwant: %q\ndiff:\n%s", got, want, dmp.DiffPrettyText(diffs))
}
