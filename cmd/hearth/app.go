// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hearthmc/hearth/internal/config"
	"github.com/hearthmc/hearth/internal/fetch"
	"github.com/hearthmc/hearth/internal/launch"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/platform"
)

type (
	// ConfigProvider loads the global configuration.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// RemoteFactory builds the network client for one command run.
	RemoteFactory func(cfg *config.Config) pipeline.Remote

	// App is the composition root of the CLI. Command handlers reach every
	// service through it so tests can swap the network and process layers.
	App struct {
		Config   ConfigProvider
		Remote   RemoteFactory
		Launcher *launch.Launcher
		stdout   io.Writer
		stderr   io.Writer
		// colorScheme is set once configuration has loaded.
		colorScheme config.ColorScheme
	}

	// Dependencies are the injection points of NewApp. Nil fields get
	// production defaults.
	Dependencies struct {
		Config   ConfigProvider
		Remote   RemoteFactory
		Launcher *launch.Launcher
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Remote == nil {
		deps.Remote = newFetchClient
	}
	if deps.Launcher == nil {
		sandbox := platform.DetectSandbox()
		deps.Launcher = &launch.Launcher{
			Stdout: deps.Stdout,
			Stderr: deps.Stderr,
			Wrap:   func(argv []string) []string { return platform.HostCommand(sandbox, argv) },
		}
	}

	return &App{
		Config:      deps.Config,
		Remote:      deps.Remote,
		Launcher:    deps.Launcher,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		colorScheme: config.ColorSchemeAuto,
	}
}

func newFetchClient(cfg *config.Config) pipeline.Remote {
	return fetch.New(
		fetch.WithHTTPClient(&http.Client{Timeout: cfg.Downloads.Timeout()}),
		fetch.WithRetries(cfg.Downloads.Retries),
		fetch.WithBackoff(500*time.Millisecond),
		fetch.WithRateLimit(cfg.Downloads.RequestsPerSecond),
		fetch.WithUserAgent("hearth/"+Version),
	)
}

// mirrors converts the configured hosts, filling gaps with the defaults.
func mirrors(cfg *config.Config) pipeline.Mirrors {
	m := cfg.Mirrors
	return pipeline.Mirrors{
		VersionManifest: m.VersionManifest,
		Libraries:       m.Libraries,
		Resources:       m.Resources,
		ForgeMaven:      m.ForgeMaven,
		ForgePromotions: m.ForgePromotions,
	}.WithDefaults()
}
