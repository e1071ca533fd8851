// SPDX-License-Identifier: MPL-2.0

package forge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

// FetchLibraries downloads the overlay libraries that carry a clientreq or
// serverreq marker. Client installs then move forge.jar into the
// libraries directory where the classpath expects it.
type FetchLibraries struct{}

// Name implements pipeline.Task.
func (FetchLibraries) Name() string { return NameFetchLibraries }

// Execute implements pipeline.Task.
func (FetchLibraries) Execute(ctx context.Context, lc *pipeline.Context) error {
	m := lc.OverlayManifest
	if err := pipeline.Require(m != nil, "forge manifest not loaded"); err != nil {
		return err
	}

	var artifacts []pipeline.Artifact
	for _, lib := range m.Libraries {
		if !lib.Required() {
			continue
		}
		rel, err := manifest.MavenPath(lib.Name)
		if err != nil {
			return err
		}
		mirror := lib.URL
		if mirror == "" {
			mirror = lc.Mirrors.Libraries
		}
		artifacts = append(artifacts, pipeline.Artifact{
			URL:  strings.TrimRight(mirror, "/") + "/" + rel,
			Dest: lc.Root.Library(rel),
		})
	}

	n, err := pipeline.FetchMissing(ctx, lc, artifacts)
	if err != nil {
		return err
	}
	slog.Info("forge libraries ready", "downloaded", n, "total", len(artifacts))

	if lc.Target != layout.TargetClient {
		return nil
	}
	base, overlay, err := versions(lc)
	if err != nil {
		return err
	}
	return moveUniversal(lc.Root, LibraryPath(base, overlay))
}

// moveUniversal relocates forge.jar to rel under the libraries directory,
// replacing what is there.
func moveUniversal(root layout.Root, rel string) error {
	src := root.Join(layout.OverlayJar)
	dest := root.Library(rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.Rename(src, dest); err != nil {
		return fmt.Errorf("moving forge universal: %w", err)
	}
	return nil
}
