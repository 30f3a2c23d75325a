package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iisyw/OGit/internal/changelog"
	"github.com/iisyw/OGit/internal/config"
	ogiterrors "github.com/iisyw/OGit/internal/errors"
)

var (
	logTodayFlag  bool
	logLastFlag   int
	logFollowFlag bool
	logPlainFlag  bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View development log entries",
	Long: `View entries from the development log pair: the cumulative log
(Development.md) followed by the single-day log (TodayDevelopment.md).

By default all days are shown. Use --today for just the current day,
--last to limit the number of days, or --follow to stream new entries
as they are recorded.

Examples:
  ogit log             # Show all recorded days
  ogit log --today     # Show only the single-day log
  ogit log --last 7    # Show the last 7 days
  ogit log --follow    # Stream new entries until interrupted
  ogit log --plain     # Plain output (no colors)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLog,
}

func init() {
	logCmd.GroupID = GroupCore
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().BoolVar(&logTodayFlag, "today", false, "Show only the single-day log")
	logCmd.Flags().IntVar(&logLastFlag, "last", 0, "Number of trailing days to show (0 = all)")
	logCmd.Flags().BoolVarP(&logFollowFlag, "follow", "f", false, "Stream new entries as they are recorded")
	logCmd.Flags().BoolVar(&logPlainFlag, "plain", false, "Plain text output (no colors)")
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "loading configuration")
	}

	mgr := changelog.NewManager(cfg.MainLog, cfg.TodayLog)

	if logFollowFlag {
		return followTodayLog(cmd, mgr.TodayLogPath)
	}

	var sections []changelog.DaySection
	if logTodayFlag {
		sections, err = changelog.LoadSections(mgr.TodayLogPath)
	} else {
		sections, err = mgr.LoadAllSections()
	}
	if err != nil {
		return ogiterrors.Wrap(err, ogiterrors.Changelog)
	}

	sections = changelog.LastSections(sections, logLastFlag)
	if len(sections) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No development log entries found.")
		return nil
	}

	opts := changelog.FormatOptions{Plain: logPlainFlag}
	if err := changelog.RenderSections(sections, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("rendering log: %w", err)
	}
	return nil
}

// followTodayLog streams the single-day log to stdout until the command
// is interrupted. Rollover replaces the file via rename; the tailer
// follows the new file automatically.
func followTodayLog(cmd *cobra.Command, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tailer, err := changelog.NewTailer(path)
	if err != nil {
		return ogiterrors.Wrap(err, ogiterrors.Runtime)
	}
	defer tailer.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tailer.Run(ctx, cmd.OutOrStdout())
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return ogiterrors.Wrap(err, ogiterrors.Runtime)
	}
	return nil
}
