// SPDX-License-Identifier: MPL-2.0

package minecraft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

// Task names.
const (
	NameFetchVersions  = "minecraft.fetch_versions"
	NameFetchManifest  = "minecraft.fetch_manifest"
	NameFetchLibraries = "minecraft.fetch_libraries"
	NameFetchJar       = "minecraft.fetch_jar"
	NameExtractNatives = "minecraft.extract_natives"
	NameFetchAssets    = "minecraft.fetch_assets"
)

type (
	// FetchVersions resolves BaseSelector against the version list and
	// binds BaseVersion.
	FetchVersions struct{}

	// FetchManifest downloads and parses the client manifest of
	// BaseVersion into BaseManifest.
	FetchManifest struct{}
)

// Name implements pipeline.Task.
func (FetchVersions) Name() string { return NameFetchVersions }

// Execute implements pipeline.Task.
func (FetchVersions) Execute(ctx context.Context, lc *pipeline.Context) error {
	if err := pipeline.Require(lc.BaseSelector != "", "no base version selector"); err != nil {
		return err
	}

	text, err := lc.Remote.FetchText(ctx, lc.Mirrors.VersionManifest)
	if err != nil {
		return fmt.Errorf("fetching version list: %w", err)
	}
	list, err := manifest.ParseVersionList([]byte(text))
	if err != nil {
		return err
	}
	entry, err := list.Resolve(lc.BaseSelector)
	if err != nil {
		return err
	}

	lc.BaseVersion = entry
	slog.Info("resolved base version", "selector", lc.BaseSelector, "version", entry.ID)
	return nil
}

// Name implements pipeline.Task.
func (FetchManifest) Name() string { return NameFetchManifest }

// Execute implements pipeline.Task.
func (FetchManifest) Execute(ctx context.Context, lc *pipeline.Context) error {
	if err := pipeline.Require(lc.BaseVersion != nil, "base version not resolved"); err != nil {
		return err
	}

	text, err := lc.Remote.FetchText(ctx, lc.BaseVersion.URL)
	if err != nil {
		return fmt.Errorf("fetching manifest for %s: %w", lc.BaseVersion.ID, err)
	}
	m, err := manifest.ParseClient([]byte(text))
	if err != nil {
		return err
	}
	lc.BaseManifest = m
	return nil
}
