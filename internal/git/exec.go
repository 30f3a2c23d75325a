package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResetMode selects how Reset treats the index and working tree.
type ResetMode string

const (
	ResetSoft  ResetMode = "soft"
	ResetMixed ResetMode = "mixed"
	ResetHard  ResetMode = "hard"
)

// HasPendingChanges reports whether the working tree has anything to
// commit: modified or staged tracked files, or untracked files.
func HasPendingChanges(dir string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("checking pending changes: %w", err)
	}
	return len(bytes.TrimSpace(output)) > 0, nil
}

// Commit stages everything and creates a commit with the given message.
func Commit(ctx context.Context, dir, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message is empty")
	}

	if err := run(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	if err := run(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Push pushes the current branch to the named remote. With
// forceWithLease set, the push overwrites the remote branch only if it
// still points where the local remote-tracking ref says it does.
func Push(ctx context.Context, dir, remote string, forceWithLease bool) error {
	args := []string{"push", remote}
	if forceWithLease {
		args = []string{"push", "--force-with-lease", remote}
	}

	if err := run(ctx, dir, args...); err != nil {
		return fmt.Errorf("pushing to %s: %w", remote, err)
	}
	return nil
}

// Reset moves HEAD to target with the given mode.
func Reset(ctx context.Context, dir string, mode ResetMode, target string) error {
	switch mode {
	case ResetSoft, ResetMixed, ResetHard:
	default:
		return fmt.Errorf("invalid reset mode %q", mode)
	}
	if target == "" {
		return fmt.Errorf("reset target is required")
	}

	if err := run(ctx, dir, "reset", "--"+string(mode), target); err != nil {
		return fmt.Errorf("resetting to %s: %w", target, err)
	}
	return nil
}

// LastCommitSubject returns the subject line of the HEAD commit.
func LastCommitSubject(dir string) (string, error) {
	cmd := exec.Command("git", "log", "-1", "--pretty=%s")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("reading last commit: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// run executes a git subcommand, surfacing stderr in the error.
func run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("git %s: %s: %w", args[0], msg, err)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
