package md

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/bash/md/internal/debuglog"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))

type eventKind uint8

const (
	eventStart eventKind = iota + 1
	eventEnd
	eventText
	eventCode
	eventSoftBreak
	eventHardBreak
	eventHTML
	eventFootnoteRef
	eventTaskMarker
	eventRule
)

type tag uint8

const (
	tagParagraph tag = iota + 1
	tagHeading
	tagBlockQuote
	tagCodeBlock
	tagList
	tagItem
	tagTable
	tagFootnoteDef
	tagEmphasis
	tagStrong
	tagStrikethrough
	tagLink
	tagImage
)

type alertKind uint8

const (
	alertNone alertKind = iota
	alertNote
	alertTip
	alertImportant
	alertWarning
	alertCaution
)

var alertMarkers = map[string]alertKind{
	"[!NOTE]":      alertNote,
	"[!TIP]":       alertTip,
	"[!IMPORTANT]": alertImportant,
	"[!WARNING]":   alertWarning,
	"[!CAUTION]":   alertCaution,
}

// event is one step of a depth-first walk over the document. Start and end
// events carry a tag; the remaining fields are set as the kind requires.
type event struct {
	kind eventKind
	tag  tag

	// text holds the content of text, code and html events, the info string
	// of a code block, a link or image destination and a footnote label.
	text    string
	level   int
	ordered bool
	start   int
	checked bool
	fenced  bool
	alert   alertKind
}

func (e event) isStart(t tag) bool { return e.kind == eventStart && e.tag == t }
func (e event) isEnd(t tag) bool   { return e.kind == eventEnd && e.tag == t }

// parseEvents parses src and flattens the tree. Footnote definitions follow
// the body, or are interleaved with the top-level blocks by source position
// when inPlace is set.
func parseEvents(src []byte, inPlace bool) []event {
	doc := markdown.Parser().Parse(text.NewReader(src))
	c := &converter{src: src, labels: make(map[int]string)}
	c.document(doc, inPlace)
	return c.events
}

type converter struct {
	src    []byte
	events []event
	labels map[int]string
}

func (c *converter) emit(e event) {
	c.events = append(c.events, e)
}

func (c *converter) start(t tag) { c.emit(event{kind: eventStart, tag: t}) }
func (c *converter) end(t tag)   { c.emit(event{kind: eventEnd, tag: t}) }

type definition struct {
	offset int
	node   *east.Footnote
}

func (c *converter) document(doc ast.Node, inPlace bool) {
	var defs []definition
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		list, ok := n.(*east.FootnoteList)
		if !ok {
			continue
		}
		for f := list.FirstChild(); f != nil; f = f.NextSibling() {
			if fn, ok := f.(*east.Footnote); ok {
				c.labels[fn.Index] = string(fn.Ref)
				defs = append(defs, definition{offset: blockOffset(fn), node: fn})
			}
		}
	}
	if inPlace {
		sort.SliceStable(defs, func(i, j int) bool { return defs[i].offset < defs[j].offset })
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*east.FootnoteList); ok {
			continue
		}
		if inPlace {
			if off := blockOffset(n); off >= 0 {
				for len(defs) > 0 && defs[0].offset < off {
					c.footnote(defs[0].node)
					defs = defs[1:]
				}
			}
		}
		c.block(n)
	}
	for _, d := range defs {
		c.footnote(d.node)
	}
}

// blockOffset returns the source position of the first line of n or of its
// first descendant with lines, or -1.
func blockOffset(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if off := blockOffset(child); off >= 0 {
			return off
		}
	}
	return -1
}

func (c *converter) footnote(fn *east.Footnote) {
	c.emit(event{kind: eventStart, tag: tagFootnoteDef, text: string(fn.Ref)})
	c.blocks(fn)
	c.end(tagFootnoteDef)
}

func (c *converter) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n)
	}
}

func (c *converter) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Paragraph:
		c.start(tagParagraph)
		c.inlines(n, -1)
		c.end(tagParagraph)
	case *ast.TextBlock:
		c.inlines(n, -1)
	case *ast.Heading:
		c.emit(event{kind: eventStart, tag: tagHeading, level: n.Level})
		c.inlines(n, -1)
		c.end(tagHeading)
	case *ast.ThematicBreak:
		c.emit(event{kind: eventRule})
	case *ast.CodeBlock:
		c.emit(event{kind: eventStart, tag: tagCodeBlock})
		c.codeLines(n)
		c.end(tagCodeBlock)
	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(c.src))
		}
		c.emit(event{kind: eventStart, tag: tagCodeBlock, fenced: true, text: info})
		c.codeLines(n)
		c.end(tagCodeBlock)
	case *ast.Blockquote:
		c.blockQuote(n)
	case *ast.List:
		c.emit(event{kind: eventStart, tag: tagList, ordered: n.IsOrdered(), start: n.Start})
		c.blocks(n)
		c.end(tagList)
	case *ast.ListItem:
		c.start(tagItem)
		if box := taskCheckBox(n); box != nil {
			c.emit(event{kind: eventTaskMarker, checked: box.IsChecked})
		}
		c.blocks(n)
		c.end(tagItem)
	case *east.Table:
		c.start(tagTable)
		c.end(tagTable)
	case *ast.HTMLBlock:
	default:
		debuglog.Log("events: unhandled block %s", n.Kind())
		c.blocks(n)
	}
}

func (c *converter) codeLines(n ast.Node) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	c.emit(event{kind: eventText, text: b.String()})
}

func taskCheckBox(item *ast.ListItem) *east.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	box, _ := first.FirstChild().(*east.TaskCheckBox)
	return box
}

// blockQuote recognises a GitHub alert marker alone on the first line of
// the quote and drops it from the content.
func (c *converter) blockQuote(n *ast.Blockquote) {
	kind, markerEnd := c.alert(n)
	c.emit(event{kind: eventStart, tag: tagBlockQuote, alert: kind})
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if p, ok := child.(*ast.Paragraph); ok && kind != alertNone && child == n.FirstChild() {
			if hasInlineAfter(p, markerEnd) {
				c.start(tagParagraph)
				c.inlines(p, markerEnd)
				c.end(tagParagraph)
			}
			continue
		}
		c.block(child)
	}
	c.end(tagBlockQuote)
}

func (c *converter) alert(n *ast.Blockquote) (alertKind, int) {
	p, ok := n.FirstChild().(*ast.Paragraph)
	if !ok || p.Lines().Len() == 0 {
		return alertNone, -1
	}
	first := p.Lines().At(0)
	marker := strings.ToUpper(string(bytes.TrimSpace(first.Value(c.src))))
	kind, ok := alertMarkers[marker]
	if !ok {
		return alertNone, -1
	}
	return kind, first.Stop
}

func hasInlineAfter(p ast.Node, offset int) bool {
	for n := p.FirstChild(); n != nil; n = n.NextSibling() {
		if start, ok := textStart(n); !ok || start >= offset {
			return true
		}
	}
	return false
}

// textStart returns the source position of the first text below n.
func textStart(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if start, ok := textStart(child); ok {
			return start, true
		}
	}
	return 0, false
}

// inlines converts the inline children of parent, skipping those starting
// before skipBefore.
func (c *converter) inlines(parent ast.Node, skipBefore int) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if start, ok := textStart(n); ok && start < skipBefore {
			continue
		}
		c.inline(n)
	}
}

func (c *converter) inline(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		value := n.Segment.Value(c.src)
		if !n.IsRaw() {
			value = unescape(value)
		}
		if len(value) > 0 {
			c.emit(event{kind: eventText, text: string(value)})
		}
		switch {
		case n.HardLineBreak():
			c.emit(event{kind: eventHardBreak})
		case n.SoftLineBreak():
			c.emit(event{kind: eventSoftBreak})
		}
	case *ast.String:
		if len(n.Value) > 0 {
			c.emit(event{kind: eventText, text: string(n.Value)})
		}
	case *ast.CodeSpan:
		c.emit(event{kind: eventCode, text: c.codeSpan(n)})
	case *ast.Emphasis:
		t := tagEmphasis
		if n.Level >= 2 {
			t = tagStrong
		}
		c.start(t)
		c.inlines(n, -1)
		c.end(t)
	case *east.Strikethrough:
		c.start(tagStrikethrough)
		c.inlines(n, -1)
		c.end(tagStrikethrough)
	case *ast.Link:
		c.emit(event{kind: eventStart, tag: tagLink, text: string(n.Destination)})
		c.inlines(n, -1)
		c.end(tagLink)
	case *ast.AutoLink:
		c.emit(event{kind: eventStart, tag: tagLink, text: string(n.URL(c.src))})
		c.emit(event{kind: eventText, text: string(n.Label(c.src))})
		c.end(tagLink)
	case *ast.Image:
		c.emit(event{kind: eventStart, tag: tagImage, text: string(n.Destination)})
		c.inlines(n, -1)
		c.end(tagImage)
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.src))
		}
		c.emit(event{kind: eventHTML, text: b.String()})
	case *east.FootnoteLink:
		c.emit(event{kind: eventFootnoteRef, text: c.labels[n.Index]})
	case *east.TaskCheckBox, *east.FootnoteBacklink:
	default:
		c.inlines(n, -1)
	}
}

func (c *converter) codeSpan(n *ast.CodeSpan) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			value := t.Segment.Value(c.src)
			if v, ok := bytes.CutSuffix(value, []byte("\n")); ok {
				b.Write(v)
				b.WriteByte(' ')
				continue
			}
			b.Write(value)
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}

func unescape(v []byte) []byte {
	return util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(v)))
}
