package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a git repository with one commit in a temp dir.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	mustGit(t, dir, "init", "-b", "main")
	mustGit(t, dir, "config", "user.email", "test@example.com")
	mustGit(t, dir, "config", "user.name", "Test")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0o644))
	mustGit(t, dir, "add", "-A")
	mustGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func TestIsRepository(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	assert.True(t, IsRepository(dir))
	assert.False(t, IsRepository(t.TempDir()))
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	branch, err := CurrentBranch(dir)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestHasPendingChanges(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)

	pending, err := HasPendingChanges(dir)
	require.NoError(t, err)
	assert.False(t, pending)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))

	pending, err = HasPendingChanges(dir)
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestCommit(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))

	require.NoError(t, Commit(context.Background(), dir, "feat: add new file"))

	pending, err := HasPendingChanges(dir)
	require.NoError(t, err)
	assert.False(t, pending)

	subject, err := LastCommitSubject(dir)
	require.NoError(t, err)
	assert.Equal(t, "feat: add new file", subject)
}

func TestCommit_EmptyMessage(t *testing.T) {
	t.Parallel()

	err := Commit(context.Background(), t.TempDir(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReset(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0o644))
	require.NoError(t, Commit(context.Background(), dir, "second commit"))

	require.NoError(t, Reset(context.Background(), dir, ResetSoft, "HEAD~1"))

	subject, err := LastCommitSubject(dir)
	require.NoError(t, err)
	assert.Equal(t, "initial commit", subject)

	// Soft reset keeps the file staged.
	pending, err := HasPendingChanges(dir)
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestReset_InvalidArguments(t *testing.T) {
	t.Parallel()

	err := Reset(context.Background(), t.TempDir(), ResetMode("bogus"), "HEAD~1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reset mode")

	err = Reset(context.Background(), t.TempDir(), ResetSoft, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
}

func TestBranchesDiverged_NoRemoteTrackingRef(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	diverged, err := BranchesDiverged(dir, "origin")
	require.NoError(t, err)
	assert.False(t, diverged)
}

func TestBranchesDiverged(t *testing.T) {
	t.Parallel()

	// A bare "remote" repo plus two clones that commit independently.
	dir := initRepo(t)
	remote := t.TempDir()
	mustGit(t, remote, "init", "--bare", "-b", "main")
	mustGit(t, dir, "remote", "add", "origin", remote)
	mustGit(t, dir, "push", "-u", "origin", "main")

	diverged, err := BranchesDiverged(dir, "origin")
	require.NoError(t, err)
	assert.False(t, diverged, "in sync after push")

	// Local ahead only: still not diverged.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644))
	require.NoError(t, Commit(context.Background(), dir, "local change"))

	diverged, err = BranchesDiverged(dir, "origin")
	require.NoError(t, err)
	assert.False(t, diverged, "local ahead is fast-forwardable")

	// Move the remote-tracking ref to a commit not on the local branch.
	other := t.TempDir()
	mustGit(t, other, "clone", remote, "work")
	workdir := filepath.Join(other, "work")
	mustGit(t, workdir, "config", "user.email", "test@example.com")
	mustGit(t, workdir, "config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "b.txt"), []byte("b\n"), 0o644))
	mustGit(t, workdir, "add", "-A")
	mustGit(t, workdir, "commit", "-m", "remote change")
	mustGit(t, workdir, "push", "origin", "main")
	mustGit(t, dir, "fetch", "origin")

	diverged, err = BranchesDiverged(dir, "origin")
	require.NoError(t, err)
	assert.True(t, diverged)
}
