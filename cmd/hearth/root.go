// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hearthmc/hearth/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// globalFlags are the persistent flags of the root command.
	globalFlags struct {
		verbose    bool
		configPath string
	}

	cfgContextKey struct{}
)

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "hearth",
		Short: "Install and launch Minecraft clients and servers",
		Long: TitleStyle.Render("hearth") + SubtitleStyle.Render(" - install and launch Minecraft, with or without forge") + `

hearth downloads a game version into a directory of your choice, records
how to start it, and launches it later without touching the network.

` + SubtitleStyle.Render("Examples:") + `
  hearth install --root ./vanilla --minecraft latest
  hearth install --root ./modded --minecraft 1.12.2 --forge recommended
  hearth install --root ./srv --minecraft release --server
  hearth launch --root ./vanilla --offline Steve
  hearth versions --snapshots`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}
			verbose := flags.verbose || cfg.UI.Verbose
			app.colorScheme = cfg.UI.ColorScheme
			setupLogging(app.stderr, verbose)
			cmd.SetContext(context.WithValue(cmd.Context(), cfgContextKey{}, &runConfig{Config: cfg, Verbose: verbose}))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/hearth/config.cue)")

	root.AddCommand(
		newInstallCommand(app),
		newLaunchCommand(app),
		newArgsCommand(app),
		newVersionsCommand(app),
		newConfigCommand(app, flags),
	)
	return root
}

// runConfig is the configuration resolved for one invocation.
type runConfig struct {
	*config.Config
	Verbose bool
}

func runConfigFrom(cmd *cobra.Command) *runConfig {
	if rc, ok := cmd.Context().Value(cfgContextKey{}).(*runConfig); ok {
		return rc
	}
	return &runConfig{Config: config.DefaultConfig()}
}

// setupLogging routes slog through a charmbracelet/log handler.
func setupLogging(w io.Writer, verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "hearth",
		Level:           level,
		ReportTimestamp: verbose,
	})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the CLI. It is called by main.main.
func Execute() {
	app := NewApp(Dependencies{})
	root := NewRootCommand(app)

	err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			renderError(w, err, verboseRequested(root), app.colorScheme)
		}),
	)
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}

func verboseRequested(root *cobra.Command) bool {
	v, err := root.PersistentFlags().GetBool("verbose")
	return err == nil && v
}
