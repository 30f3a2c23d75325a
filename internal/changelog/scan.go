package changelog

import "strings"

// ScanToday reports whether the day header for today appears in the given
// today-log lines, and how many top-level ordinal entries follow it.
// A top-level entry is a line whose trimmed form starts with a decimal
// digit; FormatEntry guarantees continuation lines are indented bullets,
// so they are never counted.
func ScanToday(lines []string, today string) (headerMatches bool, count int) {
	header := "## " + today

	for _, line := range lines {
		if !headerMatches {
			if strings.Contains(line, header) {
				headerMatches = true
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" && trimmed[0] >= '0' && trimmed[0] <= '9' {
			count++
		}
	}
	return headerMatches, count
}

// hasDayHeader reports whether any line opens a day section. A today log
// without one is structurally corrupt and cannot be scanned.
func hasDayHeader(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			return true
		}
	}
	return false
}
