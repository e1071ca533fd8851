// SPDX-License-Identifier: MPL-2.0

package install

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/hearthmc/hearth/internal/forge"
	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/launch"
	"github.com/hearthmc/hearth/internal/minecraft"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/manifest"
)

const baseManifest = `{
	"id": "1.12.2",
	"type": "release",
	"mainClass": "net.minecraft.client.main.Main",
	"minecraftArguments": "--username ${auth_player_name} --version ${version_name} --assetIndex ${assets_index_name}",
	"assetIndex": {"id": "1.12", "url": "https://meta.invalid/1.12.json"},
	"libraries": [
		{"name": "com.mojang:patchy:1.1", "downloads": {"artifact": {"path": "com/mojang/patchy/1.1/patchy-1.1.jar"}}}
	]
}`

const overlayManifest = `{
	"id": "1.12.2-forge-14.23.5.2859",
	"mainClass": "net.minecraft.launchwrapper.Launch",
	"minecraftArguments": "--username ${auth_player_name} --tweakClass net.minecraftforge.fml.common.launcher.FMLTweaker",
	"libraries": [
		{"name": "net.minecraftforge:forge:1.12.2-14.23.5.2859"},
		{"name": "net.minecraft:launchwrapper:1.12", "clientreq": true, "serverreq": true},
		{"name": "lzma:lzma:0.0.1", "serverreq": true},
		{"name": "not-a-coordinate"}
	]
}`

func TestPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  layout.Target
		overlay bool
		want    []string
	}{
		{
			name:   "client",
			target: layout.TargetClient,
			want: []string{
				minecraft.NameFetchVersions, minecraft.NameFetchManifest, minecraft.NameFetchLibraries,
				minecraft.NameFetchJar, minecraft.NameExtractNatives, minecraft.NameFetchAssets,
				NameWriteLayout,
			},
		},
		{
			name:    "client with forge",
			target:  layout.TargetClient,
			overlay: true,
			want: []string{
				forge.NameFetchVersions,
				minecraft.NameFetchVersions, minecraft.NameFetchManifest, minecraft.NameFetchLibraries,
				minecraft.NameFetchJar, minecraft.NameExtractNatives, minecraft.NameFetchAssets,
				forge.NameFetchUniversal, forge.NameLoadManifest, forge.NameFetchLibraries,
				NameWriteLayout,
			},
		},
		{
			name:   "server",
			target: layout.TargetServer,
			want: []string{
				minecraft.NameFetchVersions, minecraft.NameFetchManifest, minecraft.NameFetchJar,
				NameWriteLayout,
			},
		},
		{
			name:    "server with forge",
			target:  layout.TargetServer,
			overlay: true,
			want: []string{
				forge.NameFetchVersions,
				minecraft.NameFetchVersions, minecraft.NameFetchManifest, minecraft.NameFetchJar,
				forge.NameFetchUniversal, forge.NameLoadManifest, forge.NameFetchLibraries,
				NameWriteLayout,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pipeline.New(Plan(tt.target, tt.overlay)).Names()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Plan names =\n  %v\nwant\n  %v", got, tt.want)
			}
		})
	}
}

func TestPlan_LauncherVersion(t *testing.T) {
	t.Parallel()

	tasks := Plan(layout.TargetClient, false, WithLauncherVersion("1.4.0"))
	w, ok := tasks[len(tasks)-1].(WriteLayout)
	if !ok || w.LauncherVersion != "1.4.0" {
		t.Errorf("last task = %#v", tasks[len(tasks)-1])
	}
}

func newContext(t *testing.T, target layout.Target, overlay bool) *pipeline.Context {
	t.Helper()

	base, err := manifest.ParseClient([]byte(baseManifest))
	if err != nil {
		t.Fatal(err)
	}
	lc := &pipeline.Context{
		Target:       target,
		Root:         layout.Root(t.TempDir()),
		BaseSelector: "1.12.2",
		BaseManifest: base,
	}
	if overlay {
		ov, err := manifest.ParseForge([]byte(overlayManifest))
		if err != nil {
			t.Fatal(err)
		}
		lc.OverlaySelector = manifest.ChannelRecommended
		lc.OverlayVersion = "14.23.5.2859"
		lc.OverlayManifest = ov
	}
	return lc
}

func TestClientLock_Vanilla(t *testing.T) {
	t.Parallel()

	lock := ClientLock(newContext(t, layout.TargetClient, false), "1.4.0")

	if lock.Start.MainClass != "net.minecraft.client.main.Main" {
		t.Errorf("MainClass = %q", lock.Start.MainClass)
	}
	if len(lock.Start.ExtraLibraries) != 0 {
		t.Errorf("ExtraLibraries = %v", lock.Start.ExtraLibraries)
	}
	wantVars := map[string]string{
		"natives_directory": "natives",
		"assets_root":       "assets",
		"assets_index_name": "1.12",
		"version_name":      "1.12.2",
		"version_type":      "release",
		"launcher_name":     "hearth",
		"launcher_version":  "1.4.0",
		"user_properties":   "{}",
	}
	for k, want := range wantVars {
		if got := lock.Vars[k]; got != want {
			t.Errorf("Vars[%s] = %q, want %q", k, got, want)
		}
	}
	// Legacy manifests get the default JVM arguments.
	if len(lock.Start.JVMArguments) != 3 {
		t.Errorf("JVMArguments = %v", lock.Start.JVMArguments)
	}
}

func TestClientLock_Overlay(t *testing.T) {
	t.Parallel()

	lock := ClientLock(newContext(t, layout.TargetClient, true), DefaultLauncherVersion)

	if lock.Start.MainClass != "net.minecraft.launchwrapper.Launch" {
		t.Errorf("MainClass = %q", lock.Start.MainClass)
	}
	wantExtra := []string{
		"libraries/net/minecraftforge/forge/1.12.2-14.23.5.2859/forge-1.12.2-14.23.5.2859.jar",
		"libraries/net/minecraft/launchwrapper/1.12/launchwrapper-1.12.jar",
	}
	if !slices.Equal(lock.Start.ExtraLibraries, wantExtra) {
		t.Errorf("ExtraLibraries = %v, want %v", lock.Start.ExtraLibraries, wantExtra)
	}
	game := lock.Start.GameArguments.Admitted(func([]rules.Rule) bool { return true })
	if !slices.Contains(game, "--tweakClass") {
		t.Errorf("overlay game arguments not used: %v", game)
	}
	if got := lock.Vars["version_name"]; got != "1.12.2-14.23.5.2859" {
		t.Errorf("version_name = %q", got)
	}
}

func TestWriteLayout_Client(t *testing.T) {
	t.Parallel()

	lc := newContext(t, layout.TargetClient, true)
	if err := (WriteLayout{LauncherVersion: "1.4.0"}).Execute(context.Background(), lc); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	r := lc.Root
	for _, p := range []string{r.BaseManifest(), r.OverlayManifest(), r.Lock(), r.Profile(), r.LaunchOptions()} {
		if !layout.Exists(p) {
			t.Errorf("missing %s", p)
		}
	}

	profile, err := layout.ReadProfile(r.Profile())
	if err != nil {
		t.Fatalf("ReadProfile: %v", err)
	}
	want := layout.Profile{Target: layout.TargetClient, Minecraft: "1.12.2", Forge: "14.23.5.2859"}
	if *profile != want {
		t.Errorf("profile = %+v, want %+v", *profile, want)
	}

	in, err := launch.Open(string(r))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	args, err := in.Args(launch.OfflineAccount("Steve"), launch.Defaults{})
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	if !slices.Contains(args, "net.minecraft.launchwrapper.Launch") || !slices.Contains(args, "Steve") {
		t.Errorf("args = %v", args)
	}
}

func TestWriteLayout_KeepsLaunchOptions(t *testing.T) {
	t.Parallel()

	lc := newContext(t, layout.TargetServer, false)
	custom := &layout.LaunchOptions{Java: "/opt/jdk/bin/java", JVMArgs: "-Xmx4G"}
	if err := layout.WriteLaunchOptions(lc.Root.LaunchOptions(), custom); err != nil {
		t.Fatal(err)
	}

	if err := (WriteLayout{}).Execute(context.Background(), lc); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if layout.Exists(lc.Root.Lock()) {
		t.Error("server installs have no lock")
	}
	got, err := layout.ReadLaunchOptions(lc.Root.LaunchOptions())
	if err != nil {
		t.Fatal(err)
	}
	if *got != *custom {
		t.Errorf("launch options = %+v, want %+v", *got, *custom)
	}
}

func TestWriteLayout_RequiresOverlayManifest(t *testing.T) {
	t.Parallel()

	lc := newContext(t, layout.TargetClient, true)
	lc.OverlayManifest = nil
	if err := (WriteLayout{}).Execute(context.Background(), lc); !errors.Is(err, pipeline.ErrPrecondition) {
		t.Errorf("expected ErrPrecondition, got %v", err)
	}
}
