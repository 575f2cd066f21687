package md

import (
	"os"
	"strconv"
	"strings"
)

// DetectHyperlinkSupport reports whether the current environment likely
// supports OSC 8 hyperlinks. OSC8=0 always disables them.
func DetectHyperlinkSupport() bool {
	return detectHyperlinkSupport(os.Getenv)
}

func detectHyperlinkSupport(getenv func(string) string) bool {
	if getenv("OSC8") == "0" {
		return false
	}
	if getenv("DOMTERM") != "" {
		return true
	}
	if getenv("WT_SESSION") != "" {
		return true
	}
	if getenv("KONSOLE_VERSION") != "" {
		return true
	}
	switch getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	term := strings.ToLower(getenv("TERM"))
	for _, name := range []string{"kitty", "foot", "alacritty", "ghostty"} {
		if strings.Contains(term, name) {
			return true
		}
	}
	if vte := getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}
