// Package md renders Markdown as styled, column-limited terminal text.
//
// Prose is wrapped at Unicode line-break opportunities while style changes
// and hyperlinks pass through the layout without taking up columns. Nested
// block quotes and lists decorate every line with a prefix built from their
// markers, so wrapped text stays inside its container.
//
// Core properties:
//   - CommonMark plus GitHub extensions (alerts, task lists, strikethrough,
//     autolinks) and footnotes
//   - Prose wraps at WithTextMaxColumns even on wide terminals
//   - Styles are restored at the start of every line, so output can be
//     paged or truncated line by line
//   - Fenced code is highlighted with chroma
//
// Example:
//
//	reader := strings.NewReader("# Hello\n\nMarkdown in, ANSI out.\n")
//	err := md.Render(md.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  md.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Options such as WithHyperlinks and WithHeadingDecoration adjust the
// output; WithPlain strips every escape sequence.
package md
