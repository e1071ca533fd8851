// SPDX-License-Identifier: MPL-2.0

package minecraft

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hearthmc/hearth/internal/expand"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

// FetchLibraries downloads every library artifact and native classifier
// whose rules apply. Files already present are kept.
type FetchLibraries struct{}

// Name implements pipeline.Task.
func (FetchLibraries) Name() string { return NameFetchLibraries }

// Execute implements pipeline.Task.
func (FetchLibraries) Execute(ctx context.Context, lc *pipeline.Context) error {
	if err := pipeline.Require(lc.BaseManifest != nil, "base manifest not loaded"); err != nil {
		return err
	}

	var artifacts []pipeline.Artifact
	add := func(a manifest.Artifact) {
		if a.Path == "" {
			return
		}
		artifacts = append(artifacts, pipeline.Artifact{
			URL:  libraryURL(a, lc.Mirrors.Libraries),
			Dest: lc.Root.Library(a.Path),
		})
	}
	for _, lib := range lc.BaseManifest.Libraries {
		if !rules.Applies(lib.Rules, lc.Facts) {
			continue
		}
		if lib.Downloads.Artifact != nil {
			add(*lib.Downloads.Artifact)
		}
		if native, ok := nativeArtifact(lib, lc.Facts); ok {
			add(native)
		}
	}

	n, err := pipeline.FetchMissing(ctx, lc, artifacts)
	if err != nil {
		return err
	}
	slog.Info("libraries ready", "downloaded", n, "total", len(artifacts))
	return nil
}

// nativeArtifact returns the native classifier artifact of lib for the
// current OS. "${arch}" in the classifier key expands to the word size.
func nativeArtifact(lib manifest.Library, facts platform.Facts) (manifest.Artifact, bool) {
	key := lib.NativeClassifier(facts.OS)
	if key == "" {
		return manifest.Artifact{}, false
	}
	key = expand.Expand(key, map[string]string{"arch": facts.WordSize})
	a, ok := lib.Downloads.Classifiers[key]
	return a, ok
}

// libraryURL returns where to fetch a library artifact. Artifacts hosted
// on the default library host are served from mirror instead when one is
// configured; artifacts without a URL are looked up on mirror by path.
func libraryURL(a manifest.Artifact, mirror string) string {
	mirror = strings.TrimRight(mirror, "/")
	if a.URL == "" {
		return mirror + "/" + a.Path
	}
	if rest, ok := strings.CutPrefix(a.URL, pipeline.DefaultLibrariesURL+"/"); ok && mirror != "" {
		return mirror + "/" + rest
	}
	return a.URL
}
