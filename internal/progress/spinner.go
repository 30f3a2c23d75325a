package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerInterval is the frame rate for the animated spinner.
const spinnerInterval = 100 * time.Millisecond

// Spinner shows an animated indicator for a long-running operation. In
// non-TTY environments it prints the message once instead of animating,
// keeping logs and piped output readable.
type Spinner struct {
	message string
	symbols ProgressSymbols
	spin    *spinner.Spinner
}

// NewSpinner creates a spinner with the given message, selecting the
// animation style from the detected terminal capabilities.
func NewSpinner(message string) *Spinner {
	caps := DetectTerminalCapabilities()
	symbols := SelectSymbols(caps)

	s := &Spinner{message: message, symbols: symbols}
	if caps.IsTTY {
		s.spin = spinner.New(
			spinner.CharSets[symbols.SpinnerSet],
			spinnerInterval,
			spinner.WithWriter(os.Stderr),
			spinner.WithSuffix(" "+message),
		)
	}
	return s
}

// Start begins the animation, or prints the message once without a TTY.
func (s *Spinner) Start() {
	if s.spin != nil {
		s.spin.Start()
		return
	}
	fmt.Fprintf(os.Stderr, "%s...\n", s.message)
}

// Stop ends the animation and prints a final status marker.
func (s *Spinner) Stop(success bool) {
	if s.spin != nil {
		s.spin.Stop()
	}
	if !success {
		fmt.Fprintf(os.Stderr, "%s %s\n", s.symbols.Failure, s.message)
	}
}
