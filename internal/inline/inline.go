// Package inline writes runs of inline content (text, breaks, style and
// link changes) as wrapped, styled terminal lines.
package inline

import "github.com/bash/md/internal/termstyle"

// Kind identifies an Inline value.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindSoftBreak
	KindHardBreak
	KindPushStyle
	KindPopStyle
	KindSetLink
	KindUnsetLink
)

// Inline is one unit of inline content.
type Inline struct {
	Kind  Kind
	Text  string
	Style termstyle.Style
	URL   string
}

func Text(s string) Inline                   { return Inline{Kind: KindText, Text: s} }
func SoftBreak() Inline                      { return Inline{Kind: KindSoftBreak} }
func HardBreak() Inline                      { return Inline{Kind: KindHardBreak} }
func PushStyle(style termstyle.Style) Inline { return Inline{Kind: KindPushStyle, Style: style} }
func PopStyle() Inline                       { return Inline{Kind: KindPopStyle} }
func SetLink(url string) Inline              { return Inline{Kind: KindSetLink, URL: url} }
func UnsetLink() Inline                      { return Inline{Kind: KindUnsetLink} }
