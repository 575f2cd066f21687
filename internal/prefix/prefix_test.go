package prefix

import (
	"testing"

	"github.com/bash/md/internal/termstyle"
	"github.com/stretchr/testify/require"
)

func TestContinuedPrefixLines(t *testing.T) {
	chain := Root(termstyle.New()).Link(Continued(termstyle.Plain("1. ")), termstyle.New())
	require.Equal(t, 3, chain.Width())
	require.Equal(t, "1. ", chain.Next())
	require.Equal(t, "   ", chain.Next())
	require.Equal(t, "   ", chain.Next())
}

func TestUniformPrefix(t *testing.T) {
	p := Uniform(termstyle.Plain("┃ "))
	require.Equal(t, 2, p.Width())
	require.Equal(t, "┃ ", p.TakeNext().Text)
	require.Equal(t, "┃ ", p.TakeNext().Text)
	require.False(t, p.IsEmpty())
	empty := Uniform(termstyle.Plain(""))
	require.True(t, empty.IsEmpty())
}

func TestNestedChainRendersRootFirst(t *testing.T) {
	quote := Root(termstyle.New()).Link(Uniform(termstyle.Plain("┃ ")), termstyle.New())
	item := quote.Link(Continued(termstyle.Plain("1. ")), termstyle.New())
	require.Equal(t, 5, item.Width())
	require.Equal(t, "┃ 1. ", item.Next())
	require.Equal(t, "┃    ", item.Next())
}

func TestSiblingsShareParentFirstFace(t *testing.T) {
	list := Root(termstyle.New()).Link(Continued(termstyle.Plain("• ")), termstyle.New())
	first := list.Link(Continued(termstyle.Plain("a ")), termstyle.New())
	second := list.Link(Continued(termstyle.Plain("b ")), termstyle.New())
	require.Equal(t, "• a ", first.Next())
	// The parent face was consumed by the first sibling; the second still
	// gets its own first face.
	require.Equal(t, "  b ", second.Next())
	require.Equal(t, "    ", first.Next())
}

func TestReborrowSharesState(t *testing.T) {
	chain := Root(termstyle.New()).Link(Continued(termstyle.Plain("- ")), termstyle.New())
	alias := chain.Reborrow()
	require.Equal(t, chain.Width(), alias.Width())
	require.Equal(t, "- ", alias.Next())
	require.Equal(t, "  ", chain.Next())
}

func TestStyledFacesLayerOverChainStyle(t *testing.T) {
	bar := termstyle.Styled{Text: "┃ ", Style: termstyle.New().Fg(termstyle.Blue)}
	chain := Root(termstyle.New().Italic()).Link(Uniform(bar), termstyle.New())
	require.Equal(t, termstyle.New().Italic(), chain.Style())
	require.Equal(t, "\x1b[3;34m┃ \x1b[0m", chain.Next())

	bold := chain.WithStyle(termstyle.New().Bold())
	require.True(t, bold.Style().Has(termstyle.Bold|termstyle.Italic))
	require.Equal(t, chain.Width(), bold.Width())
}

func TestRootWritesNothing(t *testing.T) {
	root := Root(termstyle.New())
	require.Equal(t, 0, root.Width())
	require.Equal(t, "", root.Next())
	require.Equal(t, 0, root.Depth())
	require.Equal(t, 2, root.Link(Uniform(termstyle.Plain(" ")), termstyle.New()).
		Link(Uniform(termstyle.Plain(" ")), termstyle.New()).Depth())
}
