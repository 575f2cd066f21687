package md

import (
	"strconv"
	"strings"

	"github.com/bash/md/internal/prefix"
	"github.com/bash/md/internal/termstyle"
)

// sectionCounter numbers headings hierarchically.
type sectionCounter struct {
	counters [6]int
	end      int
}

func (s *sectionCounter) update(level int) {
	i := min(max(level, 1), 6) - 1
	s.counters[i]++
	s.end = i
	for j := i + 1; j < len(s.counters); j++ {
		s.counters[j] = 0
	}
}

func (s *sectionCounter) value() []int {
	return s.counters[:s.end+1]
}

// numbering returns a section number such as "1.2. " for the current
// heading. Top-level headings are not numbered, and neither is a section
// below a level that has not started yet.
func (s *sectionCounter) numbering() string {
	numbers := s.value()[1:]
	if len(numbers) == 0 || numbers[0] == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range numbers {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte('.')
	}
	b.WriteByte(' ')
	return b.String()
}

func (r *renderer) heading(level int, ctx *blockContext) error {
	r.st.sections.update(level)
	styles := &r.st.styles
	style := styles.Heading[min(max(level, 1), 6)-1]
	hctx := ctx.block(r.headingPrefix(level), style)
	return r.inlinesUntil(tagHeading, hctx)
}

func (r *renderer) headingDecoration() HeadingDecoration {
	if d := r.st.cfg.headings; d != HeadingsAuto {
		return d
	}
	if d := r.st.styles.HeadingDecoration; d != HeadingsAuto {
		return d
	}
	return HeadingsNumbered
}

func (r *renderer) headingPrefix(level int) prefix.Prefix {
	switch r.headingDecoration() {
	case HeadingsNumbered:
		return prefix.Continued(termstyle.Plain(r.st.sections.numbering()))
	case HeadingsPrefixed:
		mark := "┈"
		if !r.st.cfg.symbols.unicode() {
			mark = "#"
		}
		return prefix.Continued(termstyle.Plain(strings.Repeat(mark, level)))
	}
	return prefix.Prefix{}
}
