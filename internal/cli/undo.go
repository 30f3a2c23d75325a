package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iisyw/OGit/internal/config"
	ogiterrors "github.com/iisyw/OGit/internal/errors"
	"github.com/iisyw/OGit/internal/git"
	"github.com/iisyw/OGit/internal/output"
	"github.com/iisyw/OGit/internal/prompt"
)

var (
	undoHardFlag bool
	undoYesFlag  bool
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last commit",
	Long: `Undo the last commit with a soft reset, keeping the changes staged.
With --hard the changes are discarded entirely.

The development log entry written for the commit is kept; edit the log
files directly if it should go too.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runUndo,
}

func init() {
	undoCmd.GroupID = GroupCore
	rootCmd.AddCommand(undoCmd)

	undoCmd.Flags().BoolVar(&undoHardFlag, "hard", false, "Discard the undone changes instead of keeping them staged")
	undoCmd.Flags().BoolVarP(&undoYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}

func runUndo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configFlag)
	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "loading configuration")
	}

	if !git.IsRepository("") {
		ogiterrors.PrintError(&ogiterrors.CLIError{
			Category:    ogiterrors.Vcs,
			Message:     "not a git repository",
			Remediation: []string{"Run ogit undo from inside a git repository"},
		})
		return NewExitError(ExitMissingPrereqs)
	}

	subject, err := git.LastCommitSubject("")
	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Vcs, "reading last commit",
			"The repository may have no commits yet")
	}

	if !undoYesFlag && !cfg.SkipConfirmations {
		p := prompt.New(cmd.InOrStdin(), out)
		question := fmt.Sprintf("Undo commit %q?", subject)
		if undoHardFlag {
			question = fmt.Sprintf("Undo commit %q and DISCARD its changes?", subject)
		}
		if !p.Confirm(question, false) {
			fmt.Fprintln(out, "Aborted.")
			return NewExitError(ExitAborted)
		}
	}

	mode := git.ResetSoft
	if undoHardFlag {
		mode = git.ResetHard
	}
	if err := git.Reset(cmd.Context(), "", mode, "HEAD~1"); err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Vcs, "undoing commit",
			"Run 'git reset --soft HEAD~1' manually to see the full output")
	}

	output.PrintStepSuccess(out, "Undid commit: "+subject)
	if !undoHardFlag {
		output.PrintNotice(out, "The changes are still staged.")
	}
	output.PrintNotice(out, "The development log entry was kept.")
	return nil
}
