// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/hearthmc/hearth/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `hearth config` command tree. Every
// subcommand honours the global --config flag.
func newConfigCommand(app *App, flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hearth configuration",
		Long: `Manage hearth configuration.

Configuration is stored in:
  - Linux: ~/.config/hearth/config.cue
  - macOS: ~/Library/Application Support/hearth/config.cue
  - Windows: %APPDATA%\hearth\config.cue

Any key can be overridden with a HEARTH_<KEY> environment variable, for
example HEARTH_DOWNLOADS_CONCURRENCY=4.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app.stdout, runConfigFrom(cmd).Config, loadOptions(flags))
		},
	})

	var printOnly bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				fmt.Fprint(app.stdout, config.GenerateCUE(config.DefaultConfig()))
				return nil
			}
			path, err := config.CreateDefaultConfig(loadOptions(flags))
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&printOnly, "print", false, "print the defaults instead of writing them")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath(loadOptions(flags))
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(runConfigFrom(cmd).Config))
			return nil
		},
	})

	return cfgCmd
}

func loadOptions(flags *globalFlags) config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: flags.configPath}
}

func showConfig(w io.Writer, cfg *config.Config, opts config.LoadOptions) error {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.FilePath(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n\n", keyStyle.Render("Config file"), path)

	line := func(indent, key string, value any) {
		fmt.Fprintf(w, "%s%s: %s\n", indent, keyStyle.Render(key), valueStyle.Render(fmt.Sprint(value)))
	}
	orDefault := func(s string) string {
		if s == "" {
			return SubtitleStyle.Render("(default)")
		}
		return s
	}

	line("", "java", cfg.Java)
	line("", "jvm_args", strings.Join(cfg.JVMArgs, " "))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("downloads"))
	line("  ", "concurrency", cfg.Downloads.Concurrency)
	line("  ", "retries", cfg.Downloads.Retries)
	line("  ", "timeout_seconds", cfg.Downloads.TimeoutSeconds)
	line("  ", "requests_per_second", cfg.Downloads.RequestsPerSecond)

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("mirrors"))
	line("  ", "version_manifest", orDefault(cfg.Mirrors.VersionManifest))
	line("  ", "libraries", orDefault(cfg.Mirrors.Libraries))
	line("  ", "resources", orDefault(cfg.Mirrors.Resources))
	line("  ", "forge_maven", orDefault(cfg.Mirrors.ForgeMaven))
	line("  ", "forge_promotions", orDefault(cfg.Mirrors.ForgePromotions))

	fmt.Fprintf(w, "\n%s:\n", keyStyle.Render("ui"))
	line("  ", "verbose", cfg.UI.Verbose)
	line("  ", "color_scheme", cfg.UI.ColorScheme)
	return nil
}
