package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ogiterrors "github.com/iisyw/OGit/internal/errors"
)

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		constant int
		want     int
	}{
		"ExitSuccess":          {constant: ExitSuccess, want: 0},
		"ExitFailure":          {constant: ExitFailure, want: 1},
		"ExitAborted":          {constant: ExitAborted, want: 2},
		"ExitInvalidArguments": {constant: ExitInvalidArguments, want: 3},
		"ExitMissingPrereqs":   {constant: ExitMissingPrereqs, want: 4},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.constant)
		})
	}
}

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	err := NewExitError(ExitAborted)
	assert.Equal(t, "exit code 2", err.Error())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":        {err: nil, want: ExitSuccess},
		"aborted":          {err: NewExitError(ExitAborted), want: ExitAborted},
		"missing prereqs":  {err: NewExitError(ExitMissingPrereqs), want: ExitMissingPrereqs},
		"generic error":    {err: errors.New("boom"), want: ExitFailure},
		"argument error":   {err: ogiterrors.NewArgumentError("bad flag"), want: ExitInvalidArguments},
		"structured error": {err: ogiterrors.NewRuntimeError("boom"), want: ExitFailure},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
