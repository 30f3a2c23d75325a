package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DateLayout is the day-header date format used in both log files.
	DateLayout = "2006/01/02"

	// DefaultMainLog and DefaultTodayLog are the well-known log file
	// names, relative to the working directory.
	DefaultMainLog  = "Development.md"
	DefaultTodayLog = "TodayDevelopment.md"

	mainLogHeader = "# Development Log"
)

// ParseError reports a today log whose structure cannot be interpreted.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Manager owns the two changelog artifacts. Paths are explicit fields so
// tests and callers can point it anywhere; there is no package-level
// state.
type Manager struct {
	// MainLogPath is the cumulative log (created lazily with a title).
	MainLogPath string
	// TodayLogPath is the single-day log that receives new entries.
	TodayLogPath string
}

// NewManager creates a Manager for the given log paths. Empty paths fall
// back to the well-known defaults.
func NewManager(mainLog, todayLog string) *Manager {
	if mainLog == "" {
		mainLog = DefaultMainLog
	}
	if todayLog == "" {
		todayLog = DefaultTodayLog
	}
	return &Manager{MainLogPath: mainLog, TodayLogPath: todayLog}
}

// Today returns the current date in the day-header format (YYYY/MM/DD).
func Today() string {
	return time.Now().Format(DateLayout)
}

// RecordEntry records one commit message in the today log, rolling the
// previous day into the cumulative log first when the date has changed.
// Any failure is returned to the caller as fatal; no partial-success
// state is exposed.
func (m *Manager) RecordEntry(e Entry, today string) error {
	if err := m.EnsureMainLog(); err != nil {
		return fmt.Errorf("ensuring main log: %w", err)
	}

	if _, err := os.Stat(m.TodayLogPath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("checking today log: %w", err)
		}
		if err := os.WriteFile(m.TodayLogPath, todayLogContent(today, e), 0o644); err != nil {
			return fmt.Errorf("creating today log: %w", err)
		}
		return nil
	}

	data, err := os.ReadFile(m.TodayLogPath)
	if err != nil {
		return fmt.Errorf("reading today log: %w", err)
	}

	content := string(data)
	lines := strings.Split(content, "\n")
	if !hasDayHeader(lines) {
		return &ParseError{Path: m.TodayLogPath, Message: `no day header ("## YYYY/MM/DD") found`}
	}

	headerMatches, count := ScanToday(lines, today)
	if headerMatches {
		if err := m.appendEntry(count+1, e); err != nil {
			return fmt.Errorf("appending entry: %w", err)
		}
		return nil
	}

	return m.rollover(content, today, e)
}

// EnsureMainLog creates the cumulative log with its title header if it
// does not exist yet. An existing file is never touched.
func (m *Manager) EnsureMainLog() error {
	if _, err := os.Stat(m.MainLogPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking main log: %w", err)
	}

	if err := os.WriteFile(m.MainLogPath, []byte(mainLogHeader+"\n"), 0o644); err != nil {
		return fmt.Errorf("creating main log: %w", err)
	}
	return nil
}

// appendEntry appends ordinal entry n to the end of the today log.
func (m *Manager) appendEntry(n int, e Entry) error {
	f, err := os.OpenFile(m.TodayLogPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(FormatEntry(n, e) + "\n"); err != nil {
		return err
	}
	return f.Close()
}

// rollover archives the finished day into the main log, then replaces
// the today log with a fresh single-entry log for today.
func (m *Manager) rollover(previousDay, today string, e Entry) error {
	if err := m.archiveDay(previousDay); err != nil {
		return fmt.Errorf("archiving previous day: %w", err)
	}
	if err := m.replaceTodayLog(today, e); err != nil {
		return fmt.Errorf("starting new day log: %w", err)
	}
	return nil
}

// archiveDay appends the finished day's content verbatim to the main
// log, preceded by one blank line. The append and the today-log
// replacement are two separate steps; if a previous run crashed between
// them, the main log already ends with this block, and the append is
// skipped so a rerun cannot duplicate the day.
func (m *Manager) archiveDay(content string) error {
	existing, err := os.ReadFile(m.MainLogPath)
	if err != nil {
		return fmt.Errorf("reading main log: %w", err)
	}

	block := "\n" + content
	if strings.HasSuffix(string(existing), block) {
		return nil
	}

	f, err := os.OpenFile(m.MainLogPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening main log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("writing main log: %w", err)
	}
	return f.Close()
}

// replaceTodayLog atomically overwrites the today log with a fresh
// single-entry log via a temp file and rename in the same directory.
func (m *Manager) replaceTodayLog(today string, e Entry) error {
	dir := filepath.Dir(m.TodayLogPath)
	tmp, err := os.CreateTemp(dir, ".today-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(todayLogContent(today, e)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tmpPath, m.TodayLogPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing today log: %w", err)
	}
	return nil
}

// todayLogContent builds a fresh single-entry today log.
func todayLogContent(today string, e Entry) []byte {
	return []byte("## " + today + "\n\n" + FormatEntry(1, e) + "\n")
}
