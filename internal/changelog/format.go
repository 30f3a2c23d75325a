package changelog

import (
	"fmt"
	"strings"
)

// Entry is one recorded commit message: a single-line title plus zero or
// more body lines. Blank body lines are dropped at format time.
type Entry struct {
	Title string
	Body  []string
}

// ParseMessage splits a raw, possibly multi-line commit message into an
// Entry. The first line becomes the title; remaining non-blank lines
// become the body. A leading "- " bullet on body lines is stripped so
// formatting is normalized regardless of how the message was authored.
func ParseMessage(raw string) Entry {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	e := Entry{Title: strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e.Body = append(e.Body, strings.TrimPrefix(line, "- "))
	}
	return e
}

// String renders the entry as a commit message: the title, then a blank
// line and "- " bulleted body lines when a body is present.
func (e Entry) String() string {
	bullets := make([]string, 0, len(e.Body))
	for _, line := range e.Body {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, "- "+strings.TrimPrefix(line, "- "))
	}

	if len(bullets) == 0 {
		return e.Title
	}
	return e.Title + "\n\n" + strings.Join(bullets, "\n")
}

// IsZero reports whether the entry carries no content at all.
func (e Entry) IsZero() bool {
	return e.Title == "" && len(e.Body) == 0
}

// FormatEntry renders an entry as ordinal list item n. Body lines are
// emitted as bullets indented three spaces under the ordinal prefix, so
// a continuation line never starts with a digit at column 0 and the
// ordinal scan in ScanToday cannot mistake it for a new entry.
func FormatEntry(n int, e Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d. %s", n, e.Title)

	for _, line := range e.Body {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n   - %s", strings.TrimPrefix(line, "- "))
	}
	return sb.String()
}
