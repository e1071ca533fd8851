// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hearthmc/hearth/internal/issue"
	"github.com/hearthmc/hearth/pkg/cueutil"

	"cuelang.org/go/cue"
	"github.com/spf13/viper"
)

const (
	// AppName names the configuration directory and the env prefix.
	AppName = "hearth"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the hearth configuration directory: %APPDATA% on
// Windows, ~/Library/Application Support on macOS and $XDG_CONFIG_HOME
// (default ~/.config) elsewhere.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// FilePath returns the location of config.cue for opts.
func FilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}
	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions layers defaults, the config file and HEARTH_* variables.
// A missing default file is not an error; a missing explicit file is.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := FilePath(opts)
	if err != nil {
		return nil, "", err
	}

	resolved := ""
	switch {
	case fileExists(path):
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Compare it with 'hearth config init --print'").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
		resolved = path
	case opts.ConfigFilePath != "":
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'hearth config init' to create the default file").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolved).
			WithSuggestion("Check HEARTH_* environment variables as well as the file").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}
	return &cfg, resolved, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("java", d.Java)
	v.SetDefault("jvm_args", d.JVMArgs)
	v.SetDefault("downloads.concurrency", d.Downloads.Concurrency)
	v.SetDefault("downloads.retries", d.Downloads.Retries)
	v.SetDefault("downloads.timeout_seconds", d.Downloads.TimeoutSeconds)
	v.SetDefault("downloads.requests_per_second", d.Downloads.RequestsPerSecond)
	v.SetDefault("mirrors.version_manifest", "")
	v.SetDefault("mirrors.libraries", "")
	v.SetDefault("mirrors.resources", "")
	v.SetDefault("mirrors.forge_maven", "")
	v.SetDefault("mirrors.forge_promotions", "")
	v.SetDefault("ui.verbose", d.UI.Verbose)
	v.SetDefault("ui.color_scheme", string(d.UI.ColorScheme))
}

// loadCUEIntoViper validates path against #Config and merges it into v.
// Fields are optional, so the value is decoded into a map rather than a
// struct and concreteness is not required.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	unified, err := cueutil.Unify(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return cueutil.FormatError(err, path)
	}
	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config.cue unless one exists, and
// returns its path.
func CreateDefaultConfig(opts LoadOptions) (string, error) {
	path, err := FilePath(opts)
	if err != nil {
		return "", err
	}
	if fileExists(path) {
		return path, nil
	}
	return path, Save(path, DefaultConfig())
}

// Save writes cfg to path as CUE.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg in the config.cue format.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// hearth configuration\n")
	sb.WriteString("// Every key is optional; HEARTH_<KEY> environment variables override it.\n\n")

	fmt.Fprintf(&sb, "java: %q\n", cfg.Java)
	sb.WriteString("jvm_args: [")
	for i, arg := range cfg.JVMArgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", arg)
	}
	sb.WriteString("]\n")

	sb.WriteString("\ndownloads: {\n")
	fmt.Fprintf(&sb, "\tconcurrency:         %d\n", cfg.Downloads.Concurrency)
	fmt.Fprintf(&sb, "\tretries:             %d\n", cfg.Downloads.Retries)
	fmt.Fprintf(&sb, "\ttimeout_seconds:     %d\n", cfg.Downloads.TimeoutSeconds)
	fmt.Fprintf(&sb, "\trequests_per_second: %d\n", cfg.Downloads.RequestsPerSecond)
	sb.WriteString("}\n")

	mirrors := []struct{ key, value string }{
		{"version_manifest", cfg.Mirrors.VersionManifest},
		{"libraries", cfg.Mirrors.Libraries},
		{"resources", cfg.Mirrors.Resources},
		{"forge_maven", cfg.Mirrors.ForgeMaven},
		{"forge_promotions", cfg.Mirrors.ForgePromotions},
	}
	sb.WriteString("\nmirrors: {\n")
	for _, m := range mirrors {
		if m.value != "" {
			fmt.Fprintf(&sb, "\t%s: %q\n", m.key, m.value)
		}
	}
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}
