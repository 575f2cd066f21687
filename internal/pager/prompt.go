package pager

import "strings"

// LessEnv returns the value of LESS for a pager showing title: the user's
// current options followed by a prompt modelled on man's.
func LessEnv(current, title string) string {
	var b strings.Builder
	if current != "" {
		b.WriteString(current)
		b.WriteByte(' ')
	}
	// A string option ends at the first '$'.
	b.WriteString("-Ps")
	b.WriteString(lessEscape(title))
	b.WriteString(` ?ltline %lt?L/%L.:byte %bB?s/%s..?e (END):?pB %pB\%.. (press h for help or q to quit)$`)
	return b.String()
}

func lessEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '$' {
			r = '?'
		}
		switch r {
		case '?', ':', '.', '%', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WindowTitle returns the OSC 0 sequence naming the terminal window after
// title.
func WindowTitle(title string) string {
	return "\x1b]0;md " + title + "\x1b\\"
}
