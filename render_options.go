package md

import "net/url"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

const (
	defaultColumns        = 80
	defaultTextMaxColumns = 100
)

// HeadingDecoration selects how headings are marked up.
type HeadingDecoration uint8

const (
	// HeadingsAuto uses the decoration of the theme.
	HeadingsAuto HeadingDecoration = iota
	// HeadingsNumbered prefixes headings with section numbers such as "1.2. ".
	HeadingsNumbered
	// HeadingsPrefixed prefixes headings with one "┈" per level.
	HeadingsPrefixed
	// HeadingsNone leaves headings undecorated.
	HeadingsNone
)

// SymbolRepertoire selects the characters available for decoration.
type SymbolRepertoire uint8

const (
	SymbolsUnicode SymbolRepertoire = iota
	SymbolsASCII
	// SymbolsEmoji is SymbolsUnicode plus emoji in alert titles.
	SymbolsEmoji
)

func (s SymbolRepertoire) unicode() bool { return s != SymbolsASCII }
func (s SymbolRepertoire) emoji() bool   { return s == SymbolsEmoji }

// FootnotePlacement selects where footnote definitions are written.
type FootnotePlacement uint8

const (
	// FootnotesEndOfDocument collects definitions and writes them after the
	// last block, behind a divider.
	FootnotesEndOfDocument FootnotePlacement = iota
	// FootnotesInPlace writes each definition where it appears in the source.
	FootnotesInPlace
)

type renderConfig struct {
	columns        int
	textMaxColumns int
	hyperlinks     bool
	baseURL        *url.URL
	headings       HeadingDecoration
	symbols        SymbolRepertoire
	noHighlight    bool
	footnotes      FootnotePlacement
	plain          bool
}

func (cfg *renderConfig) normalize() {
	if cfg.columns <= 0 {
		cfg.columns = defaultColumns
	}
	if cfg.textMaxColumns <= 0 {
		cfg.textMaxColumns = defaultTextMaxColumns
	}
	if cfg.plain {
		cfg.hyperlinks = false
	}
}

// WithColumns sets the total output width. RenderRequest.Width takes
// precedence when non-zero.
func WithColumns(n int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.columns = n
	}
}

// WithTextMaxColumns caps the width of wrapped prose, independent of the
// output width. Defaults to 100.
func WithTextMaxColumns(n int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.textMaxColumns = n
	}
}

// WithHyperlinks enables or disables OSC 8 hyperlinks.
func WithHyperlinks(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.hyperlinks = enabled
	}
}

// WithBaseURL sets the URL relative link destinations are resolved against.
func WithBaseURL(base *url.URL) RenderOption {
	return func(cfg *renderConfig) {
		cfg.baseURL = base
	}
}

// WithHeadingDecoration overrides the heading decoration of the theme.
func WithHeadingDecoration(d HeadingDecoration) RenderOption {
	return func(cfg *renderConfig) {
		cfg.headings = d
	}
}

// WithSymbols selects the symbol repertoire.
func WithSymbols(s SymbolRepertoire) RenderOption {
	return func(cfg *renderConfig) {
		cfg.symbols = s
	}
}

// WithHighlighting enables or disables syntax highlighting of code blocks.
// Highlighting is on by default.
func WithHighlighting(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.noHighlight = !enabled
	}
}

// WithFootnotePlacement selects where footnote definitions are written.
func WithFootnotePlacement(p FootnotePlacement) RenderOption {
	return func(cfg *renderConfig) {
		cfg.footnotes = p
	}
}

// WithPlain strips every escape sequence from the output. Hyperlinks are
// disabled as well.
func WithPlain(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.plain = enabled
	}
}
