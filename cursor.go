package md

// cursor walks an event slice. Lookahead is a matter of saving and
// restoring the position.
type cursor struct {
	events []event
	pos    int
}

func (c *cursor) next() (event, bool) {
	if c.pos >= len(c.events) {
		return event{}, false
	}
	ev := c.events[c.pos]
	c.pos++
	return ev, true
}

func (c *cursor) peek() (event, bool) {
	if c.pos >= len(c.events) {
		return event{}, false
	}
	return c.events[c.pos], true
}

// until returns the next event unless it ends t, which it consumes.
func (c *cursor) until(t tag) (event, bool) {
	ev, ok := c.next()
	if !ok || ev.isEnd(t) {
		return event{}, false
	}
	return ev, true
}

// skip consumes events up to and including the end of t.
func (c *cursor) skip(t tag) {
	depth := 0
	for {
		ev, ok := c.next()
		if !ok {
			return
		}
		switch {
		case ev.isStart(t):
			depth++
		case ev.isEnd(t):
			if depth == 0 {
				return
			}
			depth--
		}
	}
}
