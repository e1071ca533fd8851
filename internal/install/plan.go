// SPDX-License-Identifier: MPL-2.0

package install

import (
	"github.com/hearthmc/hearth/internal/forge"
	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/minecraft"
	"github.com/hearthmc/hearth/internal/pipeline"
)

// DefaultLauncherVersion is recorded in the lock when no version is set.
const DefaultLauncherVersion = "dev"

type (
	// Option configures a plan.
	Option func(*planOptions)

	planOptions struct {
		launcherVersion string
	}
)

// WithLauncherVersion sets the launcher_version recorded in the lock.
func WithLauncherVersion(v string) Option {
	return func(o *planOptions) {
		if v != "" {
			o.launcherVersion = v
		}
	}
}

// Plan returns the ordered tasks installing target, with the forge overlay
// when overlay is set. The forge version is resolved first because its
// promotion may pin the base version.
func Plan(target layout.Target, overlay bool, opts ...Option) []pipeline.Task {
	o := planOptions{launcherVersion: DefaultLauncherVersion}
	for _, opt := range opts {
		opt(&o)
	}

	var tasks []pipeline.Task
	if overlay {
		tasks = append(tasks, forge.FetchVersions{})
	}
	tasks = append(tasks, minecraft.FetchVersions{}, minecraft.FetchManifest{})
	if target == layout.TargetClient {
		tasks = append(tasks, minecraft.FetchLibraries{})
	}
	tasks = append(tasks, minecraft.FetchJar{})
	if target == layout.TargetClient {
		tasks = append(tasks, minecraft.ExtractNatives{}, minecraft.FetchAssets{})
	}
	if overlay {
		tasks = append(tasks, forge.FetchUniversal{}, forge.LoadManifest{}, forge.FetchLibraries{})
	}
	return append(tasks, WriteLayout{LauncherVersion: o.launcherVersion})
}
