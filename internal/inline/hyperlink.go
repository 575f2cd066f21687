package inline

import "strconv"

const (
	osc8Start = "\x1b]8;"
	st        = "\x1b\\"

	// LinkClose ends the open hyperlink.
	LinkClose = osc8Start + ";" + st
)

// LinkOpen returns the OSC 8 sequence opening a hyperlink to url. Segments
// written with the same id are treated as one link by the terminal.
func LinkOpen(id int, url string) string {
	return osc8Start + "id=" + strconv.Itoa(id) + ";" + url + st
}
