// Package testutil provides test utilities and helpers for ogit tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// ogitBinaryPath caches the built ogit binary path.
	ogitBinaryPath string
	ogitBuildOnce  sync.Once
	ogitBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing: a temp
// working directory with its own HOME, so user-level config and git
// state never leak in from the developer's machine.
type E2EEnv struct {
	t       *testing.T
	tempDir string
}

// CommandResult captures the result of running an ogit command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{t: t, tempDir: t.TempDir()}
	env.buildOgit()
	return env
}

func (e *E2EEnv) buildOgit() {
	e.t.Helper()

	ogitBuildOnce.Do(func() {
		ogitBinaryPath, ogitBuildErr = buildOgitBinary()
	})
	if ogitBuildErr != nil {
		e.t.Fatalf("building ogit: %v", ogitBuildErr)
	}
}

func buildOgitBinary() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "ogit-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}
	binaryPath := filepath.Join(tmpDir, "ogit")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ogit")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building ogit: %w\nOutput: %s", err, output)
	}
	return binaryPath, nil
}

// Run executes an ogit command in the isolated environment with the
// given stdin.
func (e *E2EEnv) Run(stdin string, args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(ogitBinaryPath, args...)
	cmd.Dir = e.tempDir
	cmd.Env = e.isolatedEnv()
	cmd.Stdin = bytes.NewBufferString(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}
	return result
}

// isolatedEnv builds an environment with HOME pointed at the temp dir,
// so user-level config cannot leak into the test.
func (e *E2EEnv) isolatedEnv() []string {
	env := []string{
		"HOME=" + e.tempDir,
		"PATH=" + os.Getenv("PATH"),
		"NO_COLOR=1",
	}
	for _, key := range []string{"TERM", "LANG", "LC_ALL", "TMPDIR"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return env
}

// TempDir returns the working directory commands run in.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// ReadFile reads a file relative to the temp working directory.
func (e *E2EEnv) ReadFile(name string) string {
	e.t.Helper()

	data, err := os.ReadFile(filepath.Join(e.tempDir, name))
	if err != nil {
		e.t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// FileExists checks a path relative to the temp working directory.
func (e *E2EEnv) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.tempDir, name))
	return err == nil
}

// InitGitRepo initializes a git repository in the temp directory with
// an initial commit, so HEAD and branch state exist.
func (e *E2EEnv) InitGitRepo() {
	e.t.Helper()

	e.git("init", "-b", "main")
	e.git("config", "user.email", "test@test.com")
	e.git("config", "user.name", "Test")

	readme := filepath.Join(e.tempDir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test\n"), 0o644); err != nil {
		e.t.Fatalf("writing README: %v", err)
	}
	e.git("add", ".")
	e.git("commit", "-m", "Initial commit")
}

// AddBareRemote creates a bare repository outside the working tree and
// configures it as a remote, so pushes have somewhere to land.
func (e *E2EEnv) AddBareRemote(name string) {
	e.t.Helper()

	bare, err := os.MkdirTemp("", "ogit-remote-*")
	if err != nil {
		e.t.Fatalf("creating bare remote dir: %v", err)
	}
	e.t.Cleanup(func() { os.RemoveAll(bare) })

	cmd := exec.Command("git", "init", "--bare", "-b", "main")
	cmd.Dir = bare
	if output, err := cmd.CombinedOutput(); err != nil {
		e.t.Fatalf("git init --bare failed: %v\nOutput: %s", err, output)
	}
	e.git("remote", "add", name, bare)
}

// WriteFile writes a file relative to the temp working directory.
func (e *E2EEnv) WriteFile(name, content string) {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if dir := filepath.Dir(path); dir != e.tempDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			e.t.Fatalf("creating %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
}

// GitLog returns the oneline git log of the test repository.
func (e *E2EEnv) GitLog() string {
	e.t.Helper()

	cmd := exec.Command("git", "log", "--pretty=%s")
	cmd.Dir = e.tempDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("git log failed: %v\nOutput: %s", err, output)
	}
	return string(output)
}

func (e *E2EEnv) git(args ...string) {
	e.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = e.tempDir
	if output, err := cmd.CombinedOutput(); err != nil {
		e.t.Fatalf("git %v failed: %v\nOutput: %s", args, err, output)
	}
}
