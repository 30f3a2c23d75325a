package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatOptions controls terminal rendering of day sections.
type FormatOptions struct {
	// Plain disables colors for piping and non-TTY output.
	Plain bool
}

// RenderSections writes day sections to w, newest-last, with terminal
// styling unless opts.Plain is set.
func RenderSections(sections []DaySection, w io.Writer, opts FormatOptions) error {
	dateStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
	bodyStyle := color.New(color.Faint).SprintFunc()

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		date := "## " + s.Date
		if !opts.Plain {
			date = dateStyle(date)
		}
		if _, err := fmt.Fprintln(w, date); err != nil {
			return err
		}

		for _, entry := range s.Entries {
			if err := renderEntry(w, entry, bodyStyle, opts.Plain); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderEntry prints one entry: the ordinal line as-is, continuation
// lines re-indented under it.
func renderEntry(w io.Writer, entry string, bodyStyle func(...interface{}) string, plain bool) error {
	lines := strings.Split(entry, "\n")
	if _, err := fmt.Fprintln(w, lines[0]); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		if !plain {
			line = bodyStyle(line)
		}
		if _, err := fmt.Fprintf(w, "   %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
