// Package git wraps the version-control operations ogit needs: pending
// change detection, staging and committing, pushing, resets, and branch
// divergence checks. Repository introspection uses the go-git library;
// mutations go through the git CLI, whose behavior (hooks, config,
// credential helpers) users already rely on.
package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// openRepo opens the repository containing dir, traversing up the
// directory tree to find the repository root. An empty dir means the
// current working directory.
func openRepo(dir string) (*gogit.Repository, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return repo, nil
}

// IsRepository reports whether dir is inside a git repository.
func IsRepository(dir string) bool {
	_, err := openRepo(dir)
	return err == nil
}

// CurrentBranch returns the name of the checked-out branch, or an empty
// string in detached HEAD state.
func CurrentBranch(dir string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HasRemote reports whether the named remote is configured.
func HasRemote(dir, remote string) (bool, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return false, err
	}

	if _, err := repo.Remote(remote); err != nil {
		if err == gogit.ErrRemoteNotFound {
			return false, nil
		}
		return false, fmt.Errorf("looking up remote %q: %w", remote, err)
	}
	return true, nil
}

// BranchesDiverged reports whether the current branch and its
// remote-tracking counterpart have both moved since their common
// ancestor. A missing remote-tracking ref (never pushed) is not
// divergence. Fast-forward in either direction is not divergence.
func BranchesDiverged(dir, remote string) (bool, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return false, err
	}

	head, err := repo.Head()
	if err != nil {
		return false, fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return false, fmt.Errorf("detached HEAD state")
	}
	branch := head.Name().Short()

	remoteRef, err := repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return false, nil
		}
		return false, fmt.Errorf("resolving %s/%s: %w", remote, branch, err)
	}

	if head.Hash() == remoteRef.Hash() {
		return false, nil
	}

	localCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return false, fmt.Errorf("reading local commit: %w", err)
	}
	remoteCommit, err := repo.CommitObject(remoteRef.Hash())
	if err != nil {
		return false, fmt.Errorf("reading remote commit: %w", err)
	}

	return commitsDiverged(localCommit, remoteCommit)
}

// commitsDiverged reports true when neither commit is an ancestor of the
// other.
func commitsDiverged(local, remote *object.Commit) (bool, error) {
	localAhead, err := remote.IsAncestor(local)
	if err != nil {
		return false, fmt.Errorf("checking ancestry: %w", err)
	}
	if localAhead {
		return false, nil
	}

	remoteAhead, err := local.IsAncestor(remote)
	if err != nil {
		return false, fmt.Errorf("checking ancestry: %w", err)
	}
	return !remoteAhead, nil
}
