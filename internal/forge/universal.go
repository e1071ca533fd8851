// SPDX-License-Identifier: MPL-2.0

package forge

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

const (
	forgeGroupPath = "net/minecraftforge/forge"
	manifestEntry  = "version.json"
)

type (
	// FetchUniversal downloads the universal jar of the resolved build to
	// forge.jar, replacing any previous copy.
	FetchUniversal struct{}

	// LoadManifest reads version.json out of forge.jar into
	// OverlayManifest.
	LoadManifest struct{}
)

// FullVersion joins the base and overlay versions the way forge names its
// builds.
func FullVersion(base, overlay string) string { return base + "-" + overlay }

// UniversalURL returns the maven location of a build's universal jar.
func UniversalURL(maven, base, overlay string) string {
	v := FullVersion(base, overlay)
	return strings.TrimRight(maven, "/") + "/" + forgeGroupPath + "/" + v + "/forge-" + v + "-universal.jar"
}

// LibraryPath returns where a client install keeps the universal jar,
// relative to the libraries directory.
func LibraryPath(base, overlay string) string {
	v := FullVersion(base, overlay)
	return forgeGroupPath + "/" + v + "/forge-" + v + ".jar"
}

// Name implements pipeline.Task.
func (FetchUniversal) Name() string { return NameFetchUniversal }

// Execute implements pipeline.Task.
func (FetchUniversal) Execute(ctx context.Context, lc *pipeline.Context) error {
	base, overlay, err := versions(lc)
	if err != nil {
		return err
	}

	url := UniversalURL(lc.Mirrors.ForgeMaven, base, overlay)
	dest := lc.Root.Join(layout.OverlayJar)
	slog.Debug("downloading forge universal", "url", url)
	if err := lc.Remote.Download(ctx, url, dest); err != nil {
		return fmt.Errorf("downloading forge %s: %w", FullVersion(base, overlay), err)
	}
	return nil
}

// Name implements pipeline.Task.
func (LoadManifest) Name() string { return NameLoadManifest }

// Execute implements pipeline.Task.
func (LoadManifest) Execute(ctx context.Context, lc *pipeline.Context) error {
	jar := lc.Root.Join(layout.OverlayJar)
	if !layout.Exists(jar) {
		return fmt.Errorf("%w: %s", ErrUniversalMissing, jar)
	}
	data, err := readEntry(jar, manifestEntry)
	if err != nil {
		return fmt.Errorf("reading %s from %s: %w", manifestEntry, jar, err)
	}

	m, err := manifest.ParseForge(data)
	if err != nil {
		return err
	}
	lc.OverlayManifest = m
	slog.Debug("loaded forge manifest", "id", m.ID, "libraries", len(m.Libraries))
	return nil
}

func readEntry(archive, name string) (_ []byte, err error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }() // read-only archive

	rc, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return io.ReadAll(rc)
}

func versions(lc *pipeline.Context) (base, overlay string, err error) {
	base = lc.BaseID()
	if err := pipeline.Require(base != "", "base version not resolved"); err != nil {
		return "", "", err
	}
	if err := pipeline.Require(lc.OverlayVersion != "", "forge version not resolved"); err != nil {
		return "", "", err
	}
	return base, lc.OverlayVersion, nil
}
