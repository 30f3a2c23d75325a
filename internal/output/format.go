// Package output provides terminal output formatting utilities for the ogit CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintBanner prints a full-width '=' separator with the title centered
// on the following line.
func PrintBanner(out io.Writer, title string) {
	width := GetTerminalWidth()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(out, cyan(strings.Repeat("=", width)))
	fmt.Fprintln(out, cyan(centerText(title, width)))
	fmt.Fprintln(out, cyan(strings.Repeat("=", width)))
}

// PrintSeparator prints a full-width '-' separator line.
func PrintSeparator(out io.Writer) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(out, dim(strings.Repeat("-", GetTerminalWidth())))
}

// PrintSummaryField prints a "Label: value" pair with the label in bold.
func PrintSummaryField(out io.Writer, label, value string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", bold(label+":"), value)
}

// PrintStepSuccess prints a green checkmark followed by the message.
func PrintStepSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintStepFailure prints a red cross followed by the message.
func PrintStepFailure(out io.Writer, message string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), message)
}

// PrintStepSkipped prints a dim marker for a step that did not run.
func PrintStepSkipped(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", dim("-"), dim(message))
}

// PrintNotice prints an informational message in yellow.
func PrintNotice(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintln(out, yellow(message))
}

// centerText pads text with spaces so it sits in the middle of width
// columns. Text wider than width is returned unchanged.
func centerText(text string, width int) string {
	pad := (width - len([]rune(text))) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
