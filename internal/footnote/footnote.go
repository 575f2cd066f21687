// Package footnote numbers footnote references in order of first use.
package footnote

import (
	"strconv"
	"strings"
)

// Table maps footnote labels to ordinals. The zero value is ready to use.
type Table struct {
	numbers map[string]int
}

// Number returns the ordinal of label, assigning the next free one on first
// lookup.
func (t *Table) Number(label string) int {
	if t.numbers == nil {
		t.numbers = make(map[string]int)
	}
	if n, ok := t.numbers[label]; ok {
		return n
	}
	n := len(t.numbers) + 1
	t.numbers[label] = n
	return n
}

// Len returns the number of labels seen.
func (t *Table) Len() int {
	return len(t.numbers)
}

var superscripts = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// Superscript formats n with superscript digits.
func Superscript(n int) string {
	if n < 0 {
		return "⁻" + Superscript(-n)
	}
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteString(superscripts[d-'0'])
	}
	return b.String()
}
