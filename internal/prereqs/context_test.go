package prereqs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCIWorkflow(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup func(t *testing.T, dir string)
		want  bool
	}{
		"workflows dir present": {
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0o755))
			},
			want: true,
		},
		"empty workflows dir still counts": {
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0o755))
			},
			want: true,
		},
		"no github dir": {
			setup: func(t *testing.T, dir string) {},
			want:  false,
		},
		"github dir without workflows": {
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0o755))
			},
			want: false,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			tt.setup(t, dir)
			assert.Equal(t, tt.want, HasCIWorkflow(dir, ".github/workflows"))
		})
	}
}

func TestHasCIWorkflow_CustomDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ci", "pipelines"), 0o755))

	assert.True(t, HasCIWorkflow(dir, "ci/pipelines"))
	assert.False(t, HasCIWorkflow(dir, ".github/workflows"))
}

func TestComputeContext_NotARepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, err := ComputeContext(Options{WorkDir: dir, Remote: "github"})
	require.NoError(t, err)

	assert.Equal(t, dir, ctx.WorkDir)
	assert.False(t, ctx.IsGitRepo)
	assert.Empty(t, ctx.Branch)
	assert.False(t, ctx.HasRemote)
}

func TestComputeContext_GitRepo(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	mustGit(t, dir, "init", "-b", "main")
	mustGit(t, dir, "config", "user.email", "dev@example.com")
	mustGit(t, dir, "config", "user.name", "Dev")
	mustGit(t, dir, "remote", "add", "github", "https://example.com/repo.git")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0o755))

	ctx, err := ComputeContext(Options{WorkDir: dir, Remote: "github"})
	require.NoError(t, err)

	assert.True(t, ctx.IsGitRepo)
	assert.Equal(t, "main", ctx.Branch)
	assert.True(t, ctx.HasWorkflow)
	assert.True(t, ctx.HasRemote)

	ctx, err = ComputeContext(Options{WorkDir: dir, Remote: "upstream"})
	require.NoError(t, err)
	assert.False(t, ctx.HasRemote)
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}
