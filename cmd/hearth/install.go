// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hearthmc/hearth/internal/install"
	"github.com/hearthmc/hearth/internal/issue"
	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"

	"github.com/spf13/cobra"
)

type installFlags struct {
	root      string
	minecraft string
	forge     string
	server    bool
}

func newInstallCommand(app *App) *cobra.Command {
	flags := &installFlags{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a game version into a directory",
		Long: `Install a game version into a directory.

Selectors are either concrete versions ("1.12.2", "14.23.5.2859") or
channels: latest, release, recommended, snapshot. Running install again on
the same directory only downloads what is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "install directory (created if missing)")
	cmd.Flags().StringVar(&flags.minecraft, "minecraft", string(manifest.ChannelLatest), "game version or channel")
	cmd.Flags().StringVar(&flags.forge, "forge", "", "forge version or channel (omit for vanilla)")
	cmd.Flags().BoolVar(&flags.server, "server", false, "install a dedicated server instead of a client")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func runInstall(cmd *cobra.Command, app *App, flags *installFlags) error {
	rc := runConfigFrom(cmd)

	target := layout.TargetClient
	if flags.server {
		target = layout.TargetServer
	}

	root, err := prepareRoot(flags.root)
	if err != nil {
		return err
	}

	lc := &pipeline.Context{
		Target:          target,
		Root:            layout.Root(root),
		Remote:          app.Remote(rc.Config),
		Facts:           platform.Detect(nil),
		Mirrors:         mirrors(rc.Config),
		Concurrency:     rc.Downloads.Concurrency,
		BaseSelector:    manifest.Selector(flags.minecraft),
		OverlaySelector: manifest.Selector(flags.forge),
	}

	tasks := install.Plan(target, lc.HasOverlay(), install.WithLauncherVersion(Version))
	p := pipeline.New(tasks, pipeline.WithObserver(progressPrinter(app.stdout)))
	if err := p.Run(cmd.Context(), lc); err != nil {
		return err
	}

	installed := lc.BaseID()
	if lc.HasOverlay() {
		installed += " with forge " + lc.OverlayVersion
	}
	fmt.Fprintf(app.stdout, "%s Installed %s %s into %s\n",
		SuccessStyle.Render("✓"), target, CmdStyle.Render(installed), CmdStyle.Render(root))
	return nil
}

// prepareRoot makes dir absolute and creates it.
func prepareRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err == nil {
		err = os.MkdirAll(abs, 0o755)
	}
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("prepare install root").
			WithResource(dir).
			WithSuggestion("Pass a --root you can write to").
			WithIssue(issue.InstallRootInvalidId).
			Wrap(err).
			BuildError()
	}
	return abs, nil
}

// progressPrinter reports each task as it finishes or fails.
func progressPrinter(w io.Writer) func(pipeline.Event) {
	return func(e pipeline.Event) {
		step := stepStyle.Render(fmt.Sprintf("[%d/%d]", e.Index+1, e.Total))
		switch e.Kind {
		case pipeline.EventFinished:
			fmt.Fprintf(w, "%s %s %s\n", step, e.Task, SubtitleStyle.Render(e.Elapsed.Round(time.Millisecond).String()))
		case pipeline.EventFailed:
			fmt.Fprintf(w, "%s %s %s\n", step, e.Task, ErrorStyle.Render("failed"))
		}
	}
}
