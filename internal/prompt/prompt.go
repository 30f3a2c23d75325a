// Package prompt implements the interactive question-and-answer surface
// of ogit: confirmations, text input with defaults, single-choice menus,
// and the structured commit-message builder. All input and output flows
// through injected reader/writer pairs so commands can wire in
// cmd.InOrStdin() and tests can script the conversation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on out and reads answers from in. A single
// buffered reader is shared across questions so no input is lost
// between them.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine reads one line of input. EOF yields an empty answer, which
// every question treats as "take the default".
func (p *Prompter) readLine() string {
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Confirm asks a yes/no question. Empty input returns def; anything
// other than an explicit yes or no also falls back to def.
func (p *Prompter) Confirm(question string, def bool) bool {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	fmt.Fprintf(p.out, "%s %s: ", question, hint)

	switch p.readLine() {
	case "y", "Y", "yes", "Yes":
		return true
	case "n", "N", "no", "No":
		return false
	default:
		return def
	}
}

// Input asks for a free-text value. Empty input returns def.
func (p *Prompter) Input(question, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s (default: %s): ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	if answer := p.readLine(); answer != "" {
		return answer
	}
	return def
}

// SelectOne shows a numbered menu and returns the chosen option index.
// Empty input selects def; out-of-range or non-numeric input re-asks.
func (p *Prompter) SelectOne(question string, options []string, def int) int {
	if def < 0 || def >= len(options) {
		def = 0
	}

	fmt.Fprintf(p.out, "%s\n", question)
	for i, opt := range options {
		marker := " "
		if i == def {
			marker = "*"
		}
		fmt.Fprintf(p.out, "  %s [%d] %s\n", marker, i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "Choice (1-%d, default %d): ", len(options), def+1)

		answer := p.readLine()
		if answer == "" {
			return def
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1
	}
}
