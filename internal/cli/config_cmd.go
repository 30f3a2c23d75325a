package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iisyw/OGit/internal/config"
	ogiterrors "github.com/iisyw/OGit/internal/errors"
	"github.com/iisyw/OGit/internal/output"
)

var configForceFlag bool

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Manage ogit configuration",
	SilenceUsage: true,
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create a commented project config file",
	Long:         "Create .ogit/config.yml with all settings documented and set to their defaults.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the resolved configuration",
	Long:         "Show the effective configuration after merging defaults, user config, project config, and OGIT_* environment variables.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfigShow,
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForceFlag, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()
	if configFlag != "" {
		path = configFlag
	}

	if _, err := os.Stat(path); err == nil && !configForceFlag {
		return ogiterrors.NewConfigError(
			fmt.Sprintf("config file already exists at %s", path),
			"Pass --force to overwrite it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "creating config directory")
		}
	}
	if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0o644); err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "writing config file")
	}

	output.PrintStepSuccess(cmd.OutOrStdout(), "Created "+path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return ogiterrors.WrapWithMessage(err, ogiterrors.Configuration, "loading configuration")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "main_log: %s\n", cfg.MainLog)
	fmt.Fprintf(out, "today_log: %s\n", cfg.TodayLog)
	fmt.Fprintf(out, "default_remote: %s\n", cfg.DefaultRemote)
	fmt.Fprintf(out, "push_by_default: %t\n", cfg.PushByDefault)
	fmt.Fprintf(out, "skip_confirmations: %t\n", cfg.SkipConfirmations)
	fmt.Fprintf(out, "ci_skip_marker: %q\n", cfg.CISkipMarker)
	fmt.Fprintf(out, "workflows_dir: %s\n", cfg.WorkflowsDir)
	return nil
}
