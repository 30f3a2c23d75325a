package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DaySection is one day's worth of entries parsed from a log document.
// Entries keep their ordinal prefix; multi-line entries join their
// continuation lines with newlines.
type DaySection struct {
	Date    string
	Entries []string
}

// ParseSections parses a development log document into day sections.
// "## " lines open a day, ordinal lines open an entry, and any other
// non-blank line continues the current entry. Content before the first
// day header (the cumulative log title) is skipped.
func ParseSections(r io.Reader) ([]DaySection, error) {
	var sections []DaySection

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "## ") {
			date := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			sections = append(sections, DaySection{Date: date})
			continue
		}
		if len(sections) == 0 {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		cur := &sections[len(sections)-1]
		if trimmed[0] >= '0' && trimmed[0] <= '9' {
			cur.Entries = append(cur.Entries, trimmed)
		} else if len(cur.Entries) > 0 {
			cur.Entries[len(cur.Entries)-1] += "\n" + trimmed
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning log: %w", err)
	}
	return sections, nil
}

// LoadSections reads and parses the log file at path. A missing file
// yields no sections rather than an error.
func LoadSections(path string) ([]DaySection, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	sections, err := ParseSections(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sections, nil
}

// LoadAllSections merges the cumulative log and the today log into one
// chronological section list (cumulative first, today last).
func (m *Manager) LoadAllSections() ([]DaySection, error) {
	main, err := LoadSections(m.MainLogPath)
	if err != nil {
		return nil, err
	}
	today, err := LoadSections(m.TodayLogPath)
	if err != nil {
		return nil, err
	}
	return append(main, today...), nil
}

// LastSections returns the trailing n sections, or all of them when n is
// zero or negative.
func LastSections(sections []DaySection, n int) []DaySection {
	if n <= 0 || n >= len(sections) {
		return sections
	}
	return sections[len(sections)-n:]
}

// EntryCount returns the total number of entries across sections.
func EntryCount(sections []DaySection) int {
	total := 0
	for _, s := range sections {
		total += len(s.Entries)
	}
	return total
}
