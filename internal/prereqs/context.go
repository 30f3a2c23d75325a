// Package prereqs computes the repository context a commit run depends
// on: whether the working directory is a git repository, the current
// branch, and whether a CI workflow directory is present. The context is
// computed once up front so the command flow does not re-probe the
// filesystem at each decision point.
package prereqs

import (
	"os"
	"path/filepath"

	"github.com/iisyw/OGit/internal/git"
)

// Context contains pre-computed repository state for a commit run.
type Context struct {
	WorkDir     string // Absolute working directory the probes ran in
	IsGitRepo   bool   // Whether WorkDir is inside a git repository
	Branch      string // Current branch name, empty on detached HEAD
	HasWorkflow bool   // Whether the CI workflow directory exists
	HasRemote   bool   // Whether the configured remote exists
}

// Options configures ComputeContext.
type Options struct {
	WorkDir      string // Directory to probe (default: current directory)
	WorkflowsDir string // CI workflow directory relative to the repo (default: ".github/workflows")
	Remote       string // Remote name to probe, skipped when empty
}

// ComputeContext probes the working directory and returns the commit
// prerequisites. Probes that depend on a git repository are skipped when
// the directory is not one.
func ComputeContext(opts Options) (*Context, error) {
	dir := opts.WorkDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}

	workflowsDir := opts.WorkflowsDir
	if workflowsDir == "" {
		workflowsDir = ".github/workflows"
	}

	ctx := &Context{
		WorkDir:     dir,
		IsGitRepo:   git.IsRepository(dir),
		HasWorkflow: HasCIWorkflow(dir, workflowsDir),
	}

	if !ctx.IsGitRepo {
		return ctx, nil
	}

	branch, err := git.CurrentBranch(dir)
	if err == nil {
		ctx.Branch = branch
	}

	if opts.Remote != "" {
		hasRemote, err := git.HasRemote(dir, opts.Remote)
		if err == nil {
			ctx.HasRemote = hasRemote
		}
	}

	return ctx, nil
}

// HasCIWorkflow reports whether the CI workflow directory exists under
// dir. The probe matches on presence alone so that a repository with an
// empty workflow directory still gets the CI skip marker offered.
func HasCIWorkflow(dir, workflowsDir string) bool {
	path := workflowsDir
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, workflowsDir)
	}
	_, err := os.Stat(path)
	return err == nil
}
