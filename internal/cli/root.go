// Package cli implements the ogit command surface: the root commit
// flow plus the log, undo, config, and version subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iisyw/OGit/internal/changelog"
	"github.com/iisyw/OGit/internal/config"
	ogiterrors "github.com/iisyw/OGit/internal/errors"
	"github.com/iisyw/OGit/internal/git"
	"github.com/iisyw/OGit/internal/output"
	"github.com/iisyw/OGit/internal/prereqs"
	"github.com/iisyw/OGit/internal/progress"
	"github.com/iisyw/OGit/internal/prompt"
)

// Command groups for help output
const (
	GroupCore          = "core"
	GroupConfiguration = "configuration"
)

var (
	configFlag string

	pushFlag   bool
	remoteFlag string
	ciFlag     bool
	noCIFlag   bool
	yesFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "ogit [message]",
	Short: "Interactive commit helper with a structured development log",
	Long: `OGit wraps git commit and push behind an interactive flow. Every
commit is also recorded in a pair of development log files: a
single-day log (TodayDevelopment.md) that numbers the day's entries,
and a cumulative log (Development.md) that finished days roll into.

Run ogit with no arguments to build the commit message interactively,
or pass the message directly as the first argument. Multi-line
messages become a title plus bulleted detail lines in the log.`,
	Example: `  ogit                          # Build the commit message interactively
  ogit "fix: typo in README"    # Commit with the given message
  ogit -p                       # Commit, then push to the default remote
  ogit -p -r origin             # Push to a specific remote
  ogit -p -n                    # Push without triggering CI builds`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the project config file (default .ogit/config.yml)")

	rootCmd.Flags().BoolVarP(&pushFlag, "push", "p", false, "Push to the remote after committing")
	rootCmd.Flags().StringVarP(&remoteFlag, "remote", "r", "", "Remote to push to (default from config)")
	rootCmd.Flags().BoolVarP(&ciFlag, "ci", "c", false, "Trigger CI builds for this commit")
	rootCmd.Flags().BoolVarP(&noCIFlag, "no-ci", "n", false, "Suppress CI builds for this commit")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.MarkFlagsMutuallyExclusive("ci", "no-ci")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)
}

// Execute runs the root command and prints structured errors to stderr.
// The returned error maps to a process exit code via ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := ogiterrors.AsCLIError(err); cliErr != nil {
		ogiterrors.PrintError(cliErr)
	} else if _, ok := err.(*ExitError); !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func runCommit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configFlag)
	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "loading configuration",
			"Check the YAML syntax of .ogit/config.yml",
			"Run 'ogit config init' to regenerate a commented template")
	}

	skipConfirm := yesFlag || cfg.SkipConfirmations

	repo, err := prereqs.ComputeContext(prereqs.Options{
		WorkflowsDir: cfg.WorkflowsDir,
	})
	if err != nil {
		return ogiterrors.Wrap(err, ogiterrors.Runtime)
	}
	if !repo.IsGitRepo {
		ogiterrors.PrintError(&ogiterrors.CLIError{
			Category: ogiterrors.Vcs,
			Message:  "not a git repository",
			Remediation: []string{
				"Run ogit from inside a git repository",
				"Run 'git init' to create one here",
			},
		})
		return NewExitError(ExitMissingPrereqs)
	}

	output.PrintBanner(out, "OGit Commit Helper")

	p := prompt.New(cmd.InOrStdin(), out)

	var entry changelog.Entry
	if len(args) == 1 {
		entry = changelog.ParseMessage(args[0])
		if entry.IsZero() {
			entry.Title = prompt.PlaceholderTitle
		}
	} else {
		entry = p.BuildEntry()
		if !skipConfirm {
			entry = p.EditEntry(entry)
		}
	}

	if repo.HasWorkflow {
		output.PrintNotice(out, "CI workflow configuration detected")
	}

	// Push and remote come from flags when given, otherwise from the
	// operator.
	push := pushFlag || cfg.PushByDefault
	if !push && !skipConfirm {
		push = p.Confirm("Push to the remote repository?", true)
	}

	remote := remoteFlag
	if remote == "" {
		remote = cfg.DefaultRemote
		if push && !skipConfirm {
			remote = p.Input("Remote repository name", cfg.DefaultRemote)
		}
	}

	if push {
		hasRemote, remoteErr := git.HasRemote(repo.WorkDir, remote)
		if remoteErr == nil && !hasRemote {
			ogiterrors.PrintError(&ogiterrors.CLIError{
				Category: ogiterrors.Vcs,
				Message:  fmt.Sprintf("remote %q is not configured", remote),
				Remediation: []string{
					fmt.Sprintf("Run 'git remote add %s <url>'", remote),
					"Or pass a different remote with --remote",
				},
			})
			return NewExitError(ExitMissingPrereqs)
		}
	}

	// CI decision. Without an explicit flag: ask (defaulting to no) when
	// a workflow config exists and a push will trigger it; keep CI on
	// when there is no workflow config; otherwise leave it off so the
	// skip marker rides along when the commit is pushed later.
	var ciEnabled bool
	switch {
	case noCIFlag:
		ciEnabled = false
	case ciFlag:
		ciEnabled = true
	case !repo.HasWorkflow:
		ciEnabled = true
	case push && !skipConfirm:
		ciEnabled = p.Confirm("Run CI builds for this push?", false)
	case push:
		ciEnabled = true
	default:
		ciEnabled = false
	}

	message := entry.String()
	if !ciEnabled && repo.HasWorkflow && cfg.CISkipMarker != "" {
		// The marker is part of the message: the log entry and the
		// commit must both carry it.
		message += " " + cfg.CISkipMarker
		entry = changelog.ParseMessage(message)
	}

	printSummary(out, repo.Branch, message, remote, push, ciEnabled, repo.HasWorkflow)

	if !skipConfirm && !p.Confirm("Proceed?", true) {
		fmt.Fprintln(out, "Aborted.")
		return NewExitError(ExitAborted)
	}

	// The log update runs before staging so the commit includes it.
	mgr := changelog.NewManager(cfg.MainLog, cfg.TodayLog)
	if err := mgr.RecordEntry(entry, changelog.Today()); err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Changelog, "updating development log",
			fmt.Sprintf("Check that %s and %s are writable", cfg.MainLog, cfg.TodayLog),
			fmt.Sprintf("A day header looks like: ## %s", changelog.Today()))
	}
	output.PrintStepSuccess(out, "Development log updated")

	pending, err := git.HasPendingChanges(repo.WorkDir)
	if err != nil {
		return ogiterrors.Wrap(err, ogiterrors.Vcs)
	}
	if !pending {
		output.PrintNotice(out, "Nothing to commit.")
		return nil
	}

	ctx := cmd.Context()
	if err := git.Commit(ctx, repo.WorkDir, message); err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Vcs, "creating commit",
			"Check 'git status' for conflicting state",
			"Commit hooks may have rejected the commit")
	}
	output.PrintStepSuccess(out, "Committed: "+entry.Title)

	if !push {
		output.PrintStepSkipped(out, "Push skipped")
		return nil
	}
	return pushToRemote(ctx, cmd, p, repo.WorkDir, remote, skipConfirm)
}

// pushToRemote pushes the current branch, first checking for divergence
// from the remote-tracking branch. On divergence the operator is offered
// a force-with-lease push; declining leaves the commit local.
func pushToRemote(ctx context.Context, cmd *cobra.Command, p *prompt.Prompter, dir, remote string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	forceWithLease := false
	diverged, err := git.BranchesDiverged(dir, remote)
	if err == nil && diverged {
		question := fmt.Sprintf("Local and %s branches have diverged. Overwrite the remote (force-with-lease)?", remote)
		if skipConfirm || !p.Confirm(question, false) {
			output.PrintStepSkipped(out, "Push skipped")
			output.PrintNotice(out, "Run 'git pull --rebase' and push manually.")
			return nil
		}
		forceWithLease = true
	}

	spin := progress.NewSpinner("Pushing to " + remote)
	spin.Start()
	err = git.Push(ctx, dir, remote, forceWithLease)
	spin.Stop(err == nil)

	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Vcs, "pushing to remote",
			"Check network access and remote credentials",
			"Run 'git push' manually to see the full output")
	}
	output.PrintStepSuccess(out, "Pushed to "+remote)
	return nil
}

// printSummary shows what is about to happen before the final
// confirmation.
func printSummary(out io.Writer, branch, message, remote string, push, ciEnabled, hasWorkflow bool) {
	output.PrintSeparator(out)
	if branch != "" {
		output.PrintSummaryField(out, "Branch", branch)
	}
	output.PrintSummaryField(out, "Message", message)
	if push {
		output.PrintSummaryField(out, "Push", "yes, to "+remote)
	} else {
		output.PrintSummaryField(out, "Push", "no")
	}
	if hasWorkflow {
		if ciEnabled {
			output.PrintSummaryField(out, "CI", "enabled")
		} else {
			output.PrintSummaryField(out, "CI", "suppressed")
		}
	}
	output.PrintSeparator(out)
}
