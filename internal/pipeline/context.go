// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"cmp"
	"context"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

// Default remote locations.
const (
	DefaultVersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"
	DefaultLibrariesURL       = "https://libraries.minecraft.net"
	DefaultResourcesURL       = "https://resources.download.minecraft.net"
	DefaultForgeMavenURL      = "https://maven.minecraftforge.net"
	DefaultForgePromotionsURL = "https://files.minecraftforge.net/net/minecraftforge/forge/promotions_slim.json"
)

type (
	// Remote is the network boundary of an install. fetch.Client
	// implements it.
	Remote interface {
		FetchText(ctx context.Context, url string) (string, error)
		Download(ctx context.Context, url, dest string) error
	}

	// Mirrors locates the remote indexes and artifact hosts.
	Mirrors struct {
		VersionManifest string
		Libraries       string
		Resources       string
		ForgeMaven      string
		ForgePromotions string
	}

	// Context is the state of one install. The input fields are set by
	// the caller; the rest are written by the task named beside them and
	// read by later tasks.
	Context struct {
		Target      layout.Target
		Root        layout.Root
		Remote      Remote
		Facts       platform.Facts
		Mirrors     Mirrors
		Concurrency int

		// BaseSelector is an input that forge.fetch_versions may rebind
		// to the base version its promotion targets.
		BaseSelector manifest.Selector
		// OverlaySelector is empty when no overlay is installed.
		OverlaySelector manifest.Selector

		OverlayVersion  string                   // forge.fetch_versions
		BaseVersion     *manifest.VersionEntry   // minecraft.fetch_versions
		BaseManifest    *manifest.ClientManifest // minecraft.fetch_manifest
		AssetIndex      *manifest.AssetIndex     // minecraft.fetch_assets
		OverlayManifest *manifest.ForgeManifest  // forge.load_manifest
	}
)

// DefaultMirrors returns the official hosts.
func DefaultMirrors() Mirrors {
	return Mirrors{
		VersionManifest: DefaultVersionManifestURL,
		Libraries:       DefaultLibrariesURL,
		Resources:       DefaultResourcesURL,
		ForgeMaven:      DefaultForgeMavenURL,
		ForgePromotions: DefaultForgePromotionsURL,
	}
}

// WithDefaults fills empty fields from DefaultMirrors.
func (m Mirrors) WithDefaults() Mirrors {
	d := DefaultMirrors()
	m.VersionManifest = cmp.Or(m.VersionManifest, d.VersionManifest)
	m.Libraries = cmp.Or(m.Libraries, d.Libraries)
	m.Resources = cmp.Or(m.Resources, d.Resources)
	m.ForgeMaven = cmp.Or(m.ForgeMaven, d.ForgeMaven)
	m.ForgePromotions = cmp.Or(m.ForgePromotions, d.ForgePromotions)
	return m
}

// HasOverlay reports whether an overlay was requested.
func (c *Context) HasOverlay() bool { return c.OverlaySelector != "" }

// BaseID returns the resolved base version id. Before
// minecraft.fetch_versions runs it falls back to a static BaseSelector.
func (c *Context) BaseID() string {
	if c.BaseVersion != nil {
		return c.BaseVersion.ID
	}
	if c.BaseSelector.IsStatic() {
		return string(c.BaseSelector)
	}
	return ""
}
