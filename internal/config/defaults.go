package config

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"main_log":           "Development.md",
		"today_log":          "TodayDevelopment.md",
		"default_remote":     "github",
		"push_by_default":    false,
		"skip_confirmations": false,
		"ci_skip_marker":     "[skip ci]",
		"workflows_dir":      ".github/workflows",
	}
}

// DefaultConfigTemplate returns a fully commented config template for
// `ogit config init`.
func DefaultConfigTemplate() string {
	return `# OGit Configuration
# Priority: environment (OGIT_*) > project (.ogit/config.yml) > user config > defaults

# Development log files (relative to the working directory)
main_log: Development.md          # Cumulative log
today_log: TodayDevelopment.md    # Single-day log, rolled over daily

# Git settings
default_remote: github            # Remote offered when pushing
push_by_default: false            # Pre-answer the push confirmation with yes

# Prompt settings
skip_confirmations: false         # Suppress all confirmation prompts (or set OGIT_YES=1)

# CI settings
ci_skip_marker: "[skip ci]"       # Appended to commit messages when CI is disabled
workflows_dir: .github/workflows  # CI workflow directory to probe
`
}
