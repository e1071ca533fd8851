// SPDX-License-Identifier: MPL-2.0

package minecraft

import (
	"context"
	"errors"
	"fmt"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/pipeline"
)

// ErrNoDownload is returned when a manifest has no jar for the target.
var ErrNoDownload = errors.New("manifest has no download for target")

// FetchJar downloads the client jar to minecraft.jar, or the server jar to
// minecraft_server.<id>.jar. An existing jar is kept.
type FetchJar struct{}

// Name implements pipeline.Task.
func (FetchJar) Name() string { return NameFetchJar }

// Execute implements pipeline.Task.
func (FetchJar) Execute(ctx context.Context, lc *pipeline.Context) error {
	m := lc.BaseManifest
	if err := pipeline.Require(m != nil, "base manifest not loaded"); err != nil {
		return err
	}

	dl, name := m.Downloads.Client, layout.ClientJar
	if lc.Target == layout.TargetServer {
		dl, name = m.Downloads.Server, layout.ServerJar(m.ID)
	}
	if dl == nil || dl.URL == "" {
		return fmt.Errorf("%w: %s %s", ErrNoDownload, m.ID, lc.Target)
	}

	_, err := pipeline.FetchMissing(ctx, lc, []pipeline.Artifact{{URL: dl.URL, Dest: lc.Root.Join(name)}})
	return err
}
