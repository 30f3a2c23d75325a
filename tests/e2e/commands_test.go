//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iisyw/OGit/internal/testutil"
)

func TestE2E_Version(t *testing.T) {
	env := testutil.NewE2EEnv(t)

	result := env.Run("", "version")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "ogit")
}

func TestE2E_LogShowsRecordedEntries(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.InitGitRepo()
	env.WriteFile("a.txt", "a\n")

	result := env.Run("", "-y", "fix: a thing")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	result = env.Run("", "log", "--plain")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "1. fix: a thing")
}

func TestE2E_LogEmpty(t *testing.T) {
	env := testutil.NewE2EEnv(t)

	result := env.Run("", "log", "--plain")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "No development log entries found.")
}

func TestE2E_UndoLastCommit(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.InitGitRepo()
	env.WriteFile("a.txt", "a\n")

	result := env.Run("", "-y", "undo me")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	require.Contains(t, env.GitLog(), "undo me")

	result = env.Run("", "undo", "-y")
	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	assert.NotContains(t, env.GitLog(), "undo me")
}

func TestE2E_ConfigInitAndShow(t *testing.T) {
	env := testutil.NewE2EEnv(t)

	result := env.Run("", "config", "init")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.True(t, env.FileExists(".ogit/config.yml"))

	// Second init without --force refuses to overwrite.
	result = env.Run("", "config", "init")
	assert.NotEqual(t, 0, result.ExitCode)

	env.WriteFile(".ogit/config.yml", "default_remote: upstream\n")
	result = env.Run("", "config", "show")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "default_remote: upstream")
}

func TestE2E_MutuallyExclusiveCIFlags(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.InitGitRepo()

	result := env.Run("", "-c", "-n", "-y", "change")
	assert.NotEqual(t, 0, result.ExitCode)
}
