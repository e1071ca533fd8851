// SPDX-License-Identifier: MPL-2.0

package install

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/hearthmc/hearth/internal/forge"
	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

const (
	// NameWriteLayout is the name of the final install task.
	NameWriteLayout = "install.write_layout"

	// LauncherName is recorded as launcher_name.
	LauncherName = "hearth"
)

// WriteLayout persists the manifests, the client lock, the profile and a
// default launch.toml. Existing launch options are left alone.
type WriteLayout struct {
	LauncherVersion string
}

// Name implements pipeline.Task.
func (WriteLayout) Name() string { return NameWriteLayout }

// Execute implements pipeline.Task.
func (w WriteLayout) Execute(ctx context.Context, lc *pipeline.Context) error {
	base := lc.BaseManifest
	if err := pipeline.Require(base != nil, "base manifest not loaded"); err != nil {
		return err
	}
	if err := pipeline.Require(!lc.HasOverlay() || lc.OverlayManifest != nil, "forge manifest not loaded"); err != nil {
		return err
	}

	r := lc.Root
	if err := layout.WriteJSON(r.BaseManifest(), base); err != nil {
		return fmt.Errorf("writing %s: %w", layout.BaseManifestFile, err)
	}
	if lc.OverlayManifest != nil {
		if err := layout.WriteJSON(r.OverlayManifest(), lc.OverlayManifest); err != nil {
			return fmt.Errorf("writing %s: %w", layout.OverlayManifestFile, err)
		}
	}
	if lc.Target == layout.TargetClient {
		if err := layout.WriteLock(r.Lock(), ClientLock(lc, w.LauncherVersion)); err != nil {
			return fmt.Errorf("writing %s: %w", layout.LockFile, err)
		}
	}

	profile := &layout.Profile{Target: lc.Target, Minecraft: base.ID}
	if lc.HasOverlay() {
		profile.Forge = lc.OverlayVersion
	}
	if err := layout.WriteProfile(r.Profile(), profile); err != nil {
		return err
	}

	if !layout.Exists(r.LaunchOptions()) {
		if err := layout.WriteLaunchOptions(r.LaunchOptions(), &layout.LaunchOptions{}); err != nil {
			return err
		}
	}

	slog.Info("install recorded", "root", string(r), "target", lc.Target, "minecraft", profile.Minecraft, "forge", profile.Forge)
	return nil
}

// ClientLock derives the launch recipe of a client install. The overlay's
// main class and game arguments win over the base manifest's; JVM
// arguments always come from the base manifest.
func ClientLock(lc *pipeline.Context, launcherVersion string) *layout.Lock {
	base := lc.BaseManifest
	start := layout.Start{
		GameArguments: base.GameArguments(),
		JVMArguments:  base.JVMArguments(),
		MainClass:     base.MainClass,
	}
	versionName := base.ID

	if ov := lc.OverlayManifest; ov != nil {
		for _, lib := range ov.Libraries {
			if !lib.ForClient() {
				continue
			}
			if rel := lib.Path(); rel != "" {
				start.ExtraLibraries = append(start.ExtraLibraries, path.Join(layout.LibrariesDir, rel))
			}
		}
		if ov.MainClass != "" {
			start.MainClass = ov.MainClass
		}
		if ov.MinecraftArguments != "" {
			start.GameArguments = ov.GameArguments()
		}
		versionName = forge.FullVersion(base.ID, lc.OverlayVersion)
	}

	return &layout.Lock{
		Start: start,
		Vars: map[string]string{
			"natives_directory": layout.NativesDir,
			"assets_root":       layout.AssetsDir,
			"assets_index_name": assetIndexName(base),
			"version_name":      versionName,
			"version_type":      base.Type,
			"launcher_name":     LauncherName,
			"launcher_version":  launcherVersion,
			"user_properties":   "{}",
		},
	}
}

func assetIndexName(m *manifest.ClientManifest) string {
	if m.AssetIndex != nil && m.AssetIndex.ID != "" {
		return m.AssetIndex.ID
	}
	return m.Assets
}
