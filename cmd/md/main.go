package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/bash/md"
	"github.com/bash/md/internal/debuglog"
	"github.com/bash/md/internal/pager"
	"github.com/bash/md/internal/termstyle"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	stdinTitle       = "STDIN"
)

func init() {
	version.SetDefaultModule("github.com/bash/md")
}

func main() {
	var (
		themeName   string
		widthFlag   int
		textWidth   int
		osc8Flag    string
		pagingFlag  string
		headings    string
		footnotes   string
		ascii       bool
		emoji       bool
		noHighlight bool
		listThemes  bool
		outPath     string
		boring      bool
	)

	flags := pflag.NewFlagSet("md", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.IntVar(&textWidth, "text-width", 100, "Maximum width of wrapped prose")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.StringVarP(&pagingFlag, "paging", "p", "auto", "Paging: auto|always|never")
	flags.StringVar(&headings, "headings", "auto", "Heading decoration: auto|numbered|prefixed|none")
	flags.StringVar(&footnotes, "footnotes", "end", "Footnote definitions: end|in-place")
	flags.BoolVar(&ascii, "ascii", false, "Only use ASCII symbols for decoration")
	flags.BoolVar(&emoji, "emoji", false, "Use emoji in alert titles")
	flags.BoolVar(&noHighlight, "no-highlight", false, "Disable syntax highlighting of code blocks")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: md [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, or the input is -, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printThemes()
		return
	}

	theme, ok := md.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	osc8, err := parseOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	paging, err := pager.ParseMode(strings.ToLower(strings.TrimSpace(pagingFlag)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --paging %q: expected auto|always|never\n", pagingFlag)
		os.Exit(2)
	}
	decoration, err := parseHeadings(headings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --headings %q: %v\n", headings, err)
		os.Exit(2)
	}
	placement, err := parseFootnotes(footnotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --footnotes %q: %v\n", footnotes, err)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, termstyle.New().Italic().Render("reading from standard input..."))
	}
	reader, closer, err := openInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	title := inputTitle(args)
	if decoration == md.HeadingsAuto && isChangelog(title) {
		decoration = md.HeadingsNone
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	stdoutTerminal := isTerminal(os.Stdout)
	width := resolveWidth(widthFlag)
	hyperlinks := osc8.resolve(stdoutTerminal && md.DetectHyperlinkSupport())
	var proc *pager.Process
	if outPath == "" && paging.Enabled(stdoutTerminal, os.Getenv("TERM")) {
		p := pager.FromEnv(os.LookupEnv)
		proc, err = p.Start(title, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if proc != nil {
			if stdoutTerminal {
				fmt.Fprint(os.Stdout, pager.WindowTitle(title))
			}
			writer = proc
			width = max(width-p.DecorationWidth(), 1)
			hyperlinks = hyperlinks && p.Hyperlinks()
		}
	}

	symbols := md.SymbolsUnicode
	switch {
	case ascii:
		symbols = md.SymbolsASCII
	case emoji:
		symbols = md.SymbolsEmoji
	}
	opts := []md.RenderOption{
		md.WithHyperlinks(hyperlinks),
		md.WithTextMaxColumns(textWidth),
		md.WithHeadingDecoration(decoration),
		md.WithSymbols(symbols),
		md.WithHighlighting(!noHighlight),
		md.WithFootnotePlacement(placement),
		md.WithPlain(boring),
	}
	if base, err := baseURL(args); err == nil {
		opts = append(opts, md.WithBaseURL(base))
	} else {
		debuglog.Log("no base URL: %v", err)
	}

	renderErr := md.Render(md.RenderRequest{
		Reader:  reader,
		Writer:  writer,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	if proc != nil {
		if err := proc.Close(); err != nil && renderErr == nil && !md.IsBrokenPipe(err) {
			renderErr = err
		}
	}
	if renderErr != nil {
		if md.IsBrokenPipe(renderErr) {
			return
		}
		fmt.Fprintf(os.Stderr, "md: %v\n", renderErr)
		os.Exit(1)
	}
}

func printThemes() {
	names := md.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(os.Stdout, os.Getenv, defaultWidth)
}

func terminalWidth(f *os.File, getenv func(string) string, fallback int) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
		debuglog.Log("terminal size unavailable")
	}
	if value := getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type osc8Mode uint8

const (
	osc8Auto osc8Mode = iota
	osc8On
	osc8Off
)

func parseOSC8(mode string) (osc8Mode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return osc8Auto, nil
	case "on", "true", "1", "yes":
		return osc8On, nil
	case "off", "false", "0", "no":
		return osc8Off, nil
	default:
		return osc8Auto, fmt.Errorf("expected auto|on|off")
	}
}

func (m osc8Mode) resolve(detected bool) bool {
	switch m {
	case osc8On:
		return true
	case osc8Off:
		return false
	}
	return detected
}

func parseHeadings(value string) (md.HeadingDecoration, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return md.HeadingsAuto, nil
	case "numbered":
		return md.HeadingsNumbered, nil
	case "prefixed":
		return md.HeadingsPrefixed, nil
	case "none":
		return md.HeadingsNone, nil
	}
	return md.HeadingsAuto, fmt.Errorf("expected auto|numbered|prefixed|none")
}

func parseFootnotes(value string) (md.FootnotePlacement, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "end":
		return md.FootnotesEndOfDocument, nil
	case "in-place", "inplace":
		return md.FootnotesInPlace, nil
	}
	return md.FootnotesEndOfDocument, fmt.Errorf("expected end|in-place")
}

var changelogStems = []string{"changelog", "history", "changes", "news", "release-notes", "release_notes", "releasenotes"}

// isChangelog reports whether name looks like a change log, whose many
// version headings read badly when numbered.
func isChangelog(name string) bool {
	stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	for _, s := range changelogStems {
		if strings.HasPrefix(stem, s) {
			return true
		}
	}
	return false
}

// inputTitle names the document after its first input.
func inputTitle(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return stdinTitle
	}
	raw := strings.TrimSpace(args[0])
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if name := filepath.Base(u.Path); name != "." && name != "/" {
			return name
		}
		return raw
	}
	return filepath.Base(raw)
}

// baseURL returns the URL relative links in the first input resolve
// against: the input's own URL, or the directory holding it as a file URL.
func baseURL(args []string) (*url.URL, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if len(args) > 0 && args[0] != "-" {
		raw := strings.TrimSpace(args[0])
		if u, err := url.Parse(raw); err == nil && len(u.Scheme) > 1 {
			return u, nil
		}
		dir = filepath.Dir(normalizePath(raw))
	}
	host, _ := os.Hostname()
	return &url.URL{Scheme: "file", Host: host, Path: filepath.ToSlash(dir) + "/"}, nil
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
