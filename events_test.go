package md

import (
	"strings"
	"testing"
)

func kinds(events []event) []eventKind {
	out := make([]eventKind, len(events))
	for i, ev := range events {
		out[i] = ev.kind
	}
	return out
}

func findEvent(events []event, match func(event) bool) (event, bool) {
	for _, ev := range events {
		if match(ev) {
			return ev, true
		}
	}
	return event{}, false
}

func TestParseEventsParagraph(t *testing.T) {
	events := parseEvents([]byte("Hello *world*\nagain\n"), false)
	want := []event{
		{kind: eventStart, tag: tagParagraph},
		{kind: eventText, text: "Hello "},
		{kind: eventStart, tag: tagEmphasis},
		{kind: eventText, text: "world"},
		{kind: eventEnd, tag: tagEmphasis},
		{kind: eventSoftBreak},
		{kind: eventText, text: "again"},
		{kind: eventEnd, tag: tagParagraph},
	}
	if len(events) != len(want) {
		t.Fatalf("unexpected events %v", kinds(events))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %+v want %+v", i, events[i], want[i])
		}
	}
}

func TestParseEventsRemovesAlertMarker(t *testing.T) {
	events := parseEvents([]byte("> [!important]\n> Read this.\n"), false)
	start := events[0]
	if !start.isStart(tagBlockQuote) || start.alert != alertImportant {
		t.Fatalf("expected important alert quote, got %+v", start)
	}
	var text strings.Builder
	for _, ev := range events {
		if ev.kind == eventText {
			text.WriteString(ev.text)
		}
	}
	if text.String() != "Read this." {
		t.Fatalf("marker text leaked into content: %q", text.String())
	}
}

func TestParseEventsMarkerWithTrailingTextIsNotAlert(t *testing.T) {
	events := parseEvents([]byte("> [!NOTE] inline\n"), false)
	if events[0].alert != alertNone {
		t.Fatalf("marker followed by text is not an alert")
	}
}

func TestParseEventsTaskMarker(t *testing.T) {
	events := parseEvents([]byte("- [x] done\n"), false)
	want := []eventKind{eventStart, eventStart, eventTaskMarker, eventText, eventEnd, eventEnd}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("unexpected events %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected events %v", got)
		}
	}
	if !events[2].checked {
		t.Fatalf("expected checked task marker")
	}
}

func TestParseEventsCodeBlock(t *testing.T) {
	events := parseEvents([]byte("```rust title\nfn main() {}\n```\n"), false)
	start := events[0]
	if !start.isStart(tagCodeBlock) || !start.fenced || start.text != "rust title" {
		t.Fatalf("unexpected code block start %+v", start)
	}
	if events[1].text != "fn main() {}\n" {
		t.Fatalf("unexpected code %q", events[1].text)
	}
}

func TestParseEventsFootnotesFollowBody(t *testing.T) {
	src := []byte("A[^n].\n\n[^n]: Note.\n\nB.\n")
	events := parseEvents(src, false)
	last := events[len(events)-1]
	if !last.isEnd(tagFootnoteDef) {
		t.Fatalf("expected definitions at the end, got %+v", last)
	}
	ref, ok := findEvent(events, func(ev event) bool { return ev.kind == eventFootnoteRef })
	if !ok || ref.text != "n" {
		t.Fatalf("expected reference to n, got %+v", ref)
	}
	def, _ := findEvent(events, func(ev event) bool { return ev.isStart(tagFootnoteDef) })
	if def.text != "n" {
		t.Fatalf("expected definition of n, got %+v", def)
	}
}

func TestParseEventsFootnotesInPlace(t *testing.T) {
	src := []byte("A[^n].\n\n[^n]: Note.\n\nB.\n")
	events := parseEvents(src, true)
	var order []string
	for _, ev := range events {
		switch {
		case ev.isStart(tagFootnoteDef):
			order = append(order, "def")
		case ev.kind == eventText:
			order = append(order, ev.text)
		}
	}
	want := []string{"A", ".", "def", "Note.", "B."}
	if len(order) != len(want) {
		t.Fatalf("unexpected order %q", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected order %q", order)
		}
	}
}

func TestParseEventsImageAndLink(t *testing.T) {
	events := parseEvents([]byte("[a](/x) ![b](y.png)\n"), false)
	link, ok := findEvent(events, func(ev event) bool { return ev.isStart(tagLink) })
	if !ok || link.text != "/x" {
		t.Fatalf("unexpected link %+v", link)
	}
	img, ok := findEvent(events, func(ev event) bool { return ev.isStart(tagImage) })
	if !ok || img.text != "y.png" {
		t.Fatalf("unexpected image %+v", img)
	}
}

func TestCursorSkipNested(t *testing.T) {
	c := &cursor{events: []event{
		{kind: eventStart, tag: tagList},
		{kind: eventText, text: "x"},
		{kind: eventEnd, tag: tagList},
		{kind: eventEnd, tag: tagList},
		{kind: eventText, text: "after"},
	}}
	c.skip(tagList)
	ev, ok := c.next()
	if !ok || ev.text != "after" {
		t.Fatalf("skip did not honor nesting, next=%+v", ev)
	}
}

func TestCursorUntil(t *testing.T) {
	c := &cursor{events: []event{
		{kind: eventText, text: "x"},
		{kind: eventEnd, tag: tagParagraph},
		{kind: eventText, text: "y"},
	}}
	if ev, ok := c.until(tagParagraph); !ok || ev.text != "x" {
		t.Fatalf("expected x, got %+v", ev)
	}
	if _, ok := c.until(tagParagraph); ok {
		t.Fatalf("expected end of paragraph")
	}
	if ev, _ := c.peek(); ev.text != "y" {
		t.Fatalf("until should consume the end event, next=%+v", ev)
	}
}
