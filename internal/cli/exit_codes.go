package cli

import (
	"fmt"

	ogiterrors "github.com/iisyw/OGit/internal/errors"
)

// Exit codes for the ogit CLI
// These codes support scripting and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a command failed during execution
	ExitFailure = 1

	// ExitAborted indicates the operator declined a confirmation
	ExitAborted = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingPrereqs indicates a required prerequisite is missing,
	// such as running outside a git repository
	ExitMissingPrereqs = 4
)

// ExitError carries a specific process exit code through the cobra
// error return path.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error that maps to the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode maps an error from Execute to a process exit code. A nil
// error is success, argument errors map to ExitInvalidArguments, and
// errors without an explicit code are generic failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	if cliErr := ogiterrors.AsCLIError(err); cliErr != nil && cliErr.Category == ogiterrors.Argument {
		return ExitInvalidArguments
	}
	return ExitFailure
}
