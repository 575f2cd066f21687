package pager

import "fmt"

// Mode selects when output is paged.
type Mode uint8

const (
	// ModeAuto pages when writing to a capable terminal.
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

// ParseMode parses auto, always or never.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "always", "on", "yes":
		return ModeAlways, nil
	case "never", "off", "no":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("pager: unknown paging mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	}
	return "auto"
}

// Enabled reports whether to page given whether standard output is a
// terminal and the value of TERM.
func (m Mode) Enabled(isTerminal bool, term string) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return isTerminal && term != "" && term != "dumb"
}
