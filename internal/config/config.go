// Package config provides hierarchical configuration for ogit using
// koanf. Values are loaded with priority: environment variables >
// project config (.ogit/config.yml) > user config (~/.config/ogit/
// config.yml) > defaults. Legacy JSON configs from older releases are
// still read, with a migration warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds all ogit settings.
type Configuration struct {
	// MainLog is the cumulative development log path.
	MainLog string `koanf:"main_log"`
	// TodayLog is the single-day development log path.
	TodayLog string `koanf:"today_log"`
	// DefaultRemote is the remote offered when pushing.
	DefaultRemote string `koanf:"default_remote"`
	// PushByDefault pre-answers the push confirmation with yes.
	PushByDefault bool `koanf:"push_by_default"`
	// SkipConfirmations suppresses all confirmation prompts
	// (also settable via the OGIT_YES environment variable).
	SkipConfirmations bool `koanf:"skip_confirmations"`
	// CISkipMarker is appended to the commit message when CI is
	// disabled and a workflow configuration exists.
	CISkipMarker string `koanf:"ci_skip_marker"`
	// WorkflowsDir is the CI workflow directory probed before asking
	// about CI builds.
	WorkflowsDir string `koanf:"workflows_dir"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path.
	ProjectConfigPath string
	// WarningWriter receives migration warnings (default os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses migration warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config >
// defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("OGIT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if os.Getenv("OGIT_YES") != "" {
		cfg.SkipConfirmations = true
	}
	return &cfg, nil
}

// loadUserConfig loads the user-level config, preferring YAML and
// falling back to legacy JSON with a migration warning.
func loadUserConfig(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath, err := UserConfigPath()
	if err != nil {
		return nil // no user config dir available; defaults apply
	}
	legacyPath, _ := LegacyUserConfigPath()
	return loadLayer(k, yamlPath, legacyPath, "user", warningWriter, skipWarnings)
}

// loadProjectConfig loads the project-level config, honoring a custom
// path override.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		if !fileExists(customPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: config file %s not found; using defaults\n", customPath)
		}
		yamlPath = customPath
	}
	return loadLayer(k, yamlPath, LegacyProjectConfigPath(), "project", warningWriter, skipWarnings)
}

// loadLayer loads one config layer: the YAML file when present,
// otherwise the legacy JSON file with a warning.
func loadLayer(k *koanf.Koanf, yamlPath, legacyPath, layer string, warningWriter io.Writer, skipWarnings bool) error {
	if fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating %s config: %w", layer, err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", layer, yamlPath, err)
		}
		return nil
	}

	if fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy %s config %s: %w", layer, legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: using deprecated JSON config at %s; move it to %s\n", legacyPath, yamlPath)
		}
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys,
// e.g. OGIT_DEFAULT_REMOTE -> default_remote.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "OGIT_"))
}
