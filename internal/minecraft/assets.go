// SPDX-License-Identifier: MPL-2.0

package minecraft

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

// FetchAssets downloads the asset index of the base manifest and every
// object it lists, and binds AssetIndex. Objects already present are kept.
type FetchAssets struct{}

// Name implements pipeline.Task.
func (FetchAssets) Name() string { return NameFetchAssets }

// Execute implements pipeline.Task.
func (FetchAssets) Execute(ctx context.Context, lc *pipeline.Context) error {
	m := lc.BaseManifest
	if err := pipeline.Require(m != nil, "base manifest not loaded"); err != nil {
		return err
	}
	if m.AssetIndex == nil || m.AssetIndex.URL == "" {
		slog.Warn("manifest has no asset index", "version", m.ID)
		return nil
	}

	indexPath := lc.Root.AssetIndex(m.AssetIndex.ID)
	if _, err := pipeline.FetchMissing(ctx, lc, []pipeline.Artifact{{URL: m.AssetIndex.URL, Dest: indexPath}}); err != nil {
		return err
	}
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("reading asset index: %w", err)
	}
	idx, err := manifest.ParseAssetIndex(data)
	if err != nil {
		return err
	}

	base := strings.TrimRight(lc.Mirrors.Resources, "/")
	artifacts := make([]pipeline.Artifact, 0, len(idx.Objects))
	for _, obj := range idx.Objects {
		if obj.Hash == "" {
			continue
		}
		rel := obj.Path()
		artifacts = append(artifacts, pipeline.Artifact{URL: base + "/" + rel, Dest: lc.Root.AssetObject(rel)})
	}

	n, err := pipeline.FetchMissing(ctx, lc, artifacts)
	if err != nil {
		return err
	}
	lc.AssetIndex = idx
	slog.Info("assets ready", "index", m.AssetIndex.ID, "downloaded", n, "total", len(artifacts))
	return nil
}
