// SPDX-License-Identifier: MPL-2.0

package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

// Task names.
const (
	NameFetchVersions  = "forge.fetch_versions"
	NameFetchUniversal = "forge.fetch_universal"
	NameLoadManifest   = "forge.load_manifest"
	NameFetchLibraries = "forge.fetch_libraries"
)

var (
	// ErrNoDistributionFound is returned when no promotion matches the
	// requested overlay channel.
	ErrNoDistributionFound = errors.New("no forge distribution found")

	// ErrUniversalMissing is returned when forge.jar is not on disk.
	ErrUniversalMissing = fmt.Errorf("%w: forge universal jar missing", pipeline.ErrPrecondition)
)

// NoDistributionError names the promotion key that was looked up last.
type NoDistributionError struct {
	Key string
}

func (e *NoDistributionError) Error() string {
	return fmt.Sprintf("%s for %q", ErrNoDistributionFound, e.Key)
}

func (e *NoDistributionError) Unwrap() error { return ErrNoDistributionFound }

// FetchVersions resolves OverlaySelector to a concrete forge build and
// binds OverlayVersion. A static selector is bound without any request.
// When the promotion targets another base version, BaseSelector is
// rebound to it.
type FetchVersions struct{}

// Name implements pipeline.Task.
func (FetchVersions) Name() string { return NameFetchVersions }

// Execute implements pipeline.Task.
func (FetchVersions) Execute(ctx context.Context, lc *pipeline.Context) error {
	sel := lc.OverlaySelector
	if err := pipeline.Require(sel != "", "no overlay selector"); err != nil {
		return err
	}
	if sel.IsStatic() {
		lc.OverlayVersion = string(sel)
		return nil
	}

	text, err := lc.Remote.FetchText(ctx, lc.Mirrors.ForgePromotions)
	if err != nil {
		return fmt.Errorf("fetching forge promotions: %w", err)
	}
	promos, err := manifest.ParsePromotions([]byte(text))
	if err != nil {
		return err
	}

	promo, err := lookup(promos, lc.BaseSelector, sel)
	if errors.Is(err, ErrNoDistributionFound) && lc.BaseSelector != "" && !lc.BaseSelector.IsStatic() {
		promo, err = lookupResolvedBase(ctx, lc, promos, sel)
	}
	if err != nil {
		return err
	}

	lc.OverlayVersion = promo.Version
	if promo.BaseVersion != "" && promo.BaseVersion != string(lc.BaseSelector) {
		slog.Info("rebinding base version to forge promotion",
			"from", lc.BaseSelector, "to", promo.BaseVersion)
		lc.BaseSelector = manifest.Selector(promo.BaseVersion)
	}
	slog.Info("resolved forge version", "selector", sel, "version", promo.Version)
	return nil
}

// lookupResolvedBase resolves a channel base selector against the version
// list and retries with the concrete id. Slim promotion indexes carry only
// "<mc>-<channel>" keys.
func lookupResolvedBase(ctx context.Context, lc *pipeline.Context, promos *manifest.Promotions, channel manifest.Selector) (manifest.Promotion, error) {
	text, err := lc.Remote.FetchText(ctx, lc.Mirrors.VersionManifest)
	if err != nil {
		return manifest.Promotion{}, fmt.Errorf("fetching version list: %w", err)
	}
	vl, err := manifest.ParseVersionList([]byte(text))
	if err != nil {
		return manifest.Promotion{}, err
	}
	entry, err := vl.Resolve(lc.BaseSelector)
	if err != nil {
		return manifest.Promotion{}, err
	}
	slog.Debug("resolved base selector for forge promotions", "selector", lc.BaseSelector, "version", entry.ID)
	return lookup(promos, manifest.Selector(entry.ID), channel)
}

// lookup tries "<base>-<channel>" when the base is pinned, then the bare
// channel.
func lookup(promos *manifest.Promotions, base, channel manifest.Selector) (manifest.Promotion, error) {
	keys := []string{string(channel)}
	if base != "" && base.IsStatic() {
		keys = []string{string(base) + "-" + string(channel), string(channel)}
	}
	for _, key := range keys {
		if promo, ok := promos.Lookup(key); ok && promo.Version != "" {
			return promo, nil
		}
	}
	return manifest.Promotion{}, &NoDistributionError{Key: keys[len(keys)-1]}
}
