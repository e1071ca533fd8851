// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hearthmc/hearth/internal/layout"
	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

func testLock() *layout.Lock {
	osx := rules.Rule{Action: rules.Allow, Condition: rules.OSCondition{Name: platform.OSX}}
	res := rules.Rule{Action: rules.Allow, Condition: rules.FeatureCondition{Features: map[string]bool{platform.FeatureCustomResolution: true}}}
	return &layout.Lock{
		Start: layout.Start{
			ExtraLibraries: []string{"libraries/net/minecraftforge/forge/1.12.2-14.23.5.2847/forge-1.12.2-14.23.5.2847.jar"},
			GameArguments: manifest.ArgumentList{
				manifest.Literal("--username"), manifest.Literal("${auth_player_name}"),
				manifest.Literal("--uuid"), manifest.Literal("${auth_uuid}"),
				manifest.Literal("--accessToken"), manifest.Literal("${auth_access_token}"),
				manifest.Literal("--assetIndex"), manifest.Literal("${assets_index_name}"),
				manifest.Conditional{Rules: []rules.Rule{res}, Values: []string{"--width", "${resolution_width}"}},
			},
			JVMArguments: manifest.ArgumentList{
				manifest.Conditional{Rules: []rules.Rule{osx}, Values: []string{"-XstartOnFirstThread"}},
				manifest.Literal("-Djava.library.path=${natives_directory}"),
				manifest.Literal("-cp"), manifest.Literal("${classpath}"),
			},
			MainClass: "net.minecraft.launchwrapper.Launch",
		},
		Vars: map[string]string{"assets_index_name": "1.12"},
	}
}

func testManifest() *manifest.ClientManifest {
	return &manifest.ClientManifest{
		ID: "1.12.2",
		Libraries: []manifest.Library{
			{Name: "a", Downloads: manifest.LibraryDownloads{Artifact: &manifest.Artifact{Path: "a/a.jar"}}},
		},
	}
}

func testRequest(root string) ClientRequest {
	return ClientRequest{
		Root:     root,
		Account:  &Account{UUID: "u1", DisplayName: "Steve", AccessToken: "tok"},
		Lock:     testLock(),
		Manifest: testManifest(),
		Facts:    platform.Facts{OS: platform.OSLinux, Arch: "x86_64", WordSize: "64"},
	}
}

func TestClientVars_NativesDirectoryIsAbsolute(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	vars, err := ClientVars(testRequest(root))
	if err != nil {
		t.Fatalf("ClientVars: %v", err)
	}

	if got, want := vars[VarNativesDirectory], filepath.Join(root, layout.NativesDir); got != want {
		t.Errorf("natives_directory = %q, want %q", got, want)
	}
	if vars[VarGameDirectory] != root || vars[VarUserType] != "mojang" {
		t.Errorf("unexpected seeded vars: %v", vars)
	}
}

func TestClientVars_EmptyNativesDirectoryUsesLayout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	req := testRequest(root)
	req.Lock.Vars[VarNativesDirectory] = ""

	vars, err := ClientVars(req)
	if err != nil {
		t.Fatalf("ClientVars: %v", err)
	}
	if got, want := vars[VarNativesDirectory], filepath.Join(root, layout.NativesDir); got != want {
		t.Errorf("natives_directory = %q, want %q", got, want)
	}
}

func TestClientVars_LockOverridesDefaults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	req := testRequest(root)
	req.Lock.Vars["user_type"] = "msa"
	req.Lock.Vars[VarNativesDirectory] = "bin/natives"

	vars, err := ClientVars(req)
	if err != nil {
		t.Fatalf("ClientVars: %v", err)
	}
	if vars[VarUserType] != "msa" {
		t.Errorf("user_type = %q, want lock value", vars[VarUserType])
	}
	if want := filepath.Join(root, "bin", "natives"); vars[VarNativesDirectory] != want {
		t.Errorf("natives_directory = %q, want %q", vars[VarNativesDirectory], want)
	}
}

func TestClientVars_AbsoluteNativesKept(t *testing.T) {
	t.Parallel()

	req := testRequest(t.TempDir())
	abs := filepath.Join(t.TempDir(), "natives")
	req.Lock.Vars[VarNativesDirectory] = abs

	vars, err := ClientVars(req)
	if err != nil {
		t.Fatalf("ClientVars: %v", err)
	}
	if vars[VarNativesDirectory] != abs {
		t.Errorf("natives_directory = %q, want %q", vars[VarNativesDirectory], abs)
	}
}

func TestClientVars_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*ClientRequest)
		want   error
		field  string
	}{
		{"no account", func(r *ClientRequest) { r.Account = nil }, ErrMissingAccount, ""},
		{"no lock", func(r *ClientRequest) { r.Lock = nil }, ErrMissingLock, ""},
		{"no manifest", func(r *ClientRequest) { r.Manifest = nil }, ErrMissingManifest, ""},
		{"no uuid", func(r *ClientRequest) { r.Account.UUID = "" }, ErrMissingAccountField, "uuid"},
		{"no name", func(r *ClientRequest) { r.Account.DisplayName = "" }, ErrMissingAccountField, "display name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := testRequest(t.TempDir())
			tt.mutate(&req)

			_, err := BuildClient(req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.field != "" {
				var fieldErr *MissingAccountFieldError
				if !errors.As(err, &fieldErr) || fieldErr.Field != tt.field {
					t.Errorf("expected MissingAccountFieldError{%q}, got %v", tt.field, err)
				}
			}
		})
	}
}

func TestBuildClient(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	req := testRequest(root)
	req.Java = "/opt/jdk/bin/java"
	req.ExtraJVMArgs = []string{"-Xmx2G"}

	args, err := BuildClient(req)
	if err != nil {
		t.Fatalf("BuildClient: %v", err)
	}

	cp := strings.Join([]string{
		filepath.Join(root, "libraries", "net", "minecraftforge", "forge", "1.12.2-14.23.5.2847", "forge-1.12.2-14.23.5.2847.jar"),
		filepath.Join(root, "libraries", "a", "a.jar"),
		filepath.Join(root, "minecraft.jar"),
	}, string(filepath.ListSeparator))

	want := []string{
		"/opt/jdk/bin/java",
		"-Djava.library.path=" + filepath.Join(root, "natives"),
		"-cp", cp,
		"-Xmx2G",
		"net.minecraft.launchwrapper.Launch",
		"--username", "Steve",
		"--uuid", "u1",
		"--accessToken", "tok",
		"--assetIndex", "1.12",
	}
	if !slices.Equal(args, want) {
		t.Errorf("BuildClient() =\n  %q\nwant\n  %q", args, want)
	}
}

func TestBuildClient_Resolution(t *testing.T) {
	t.Parallel()

	req := testRequest(t.TempDir())
	req.Width, req.Height = 1280, 720
	req.Facts = req.Facts.WithFeatures(map[string]bool{platform.FeatureCustomResolution: true})

	args, err := BuildClient(req)
	if err != nil {
		t.Fatalf("BuildClient: %v", err)
	}
	if got := args[len(args)-2:]; !slices.Equal(got, []string{"--width", "1280"}) {
		t.Errorf("trailing args = %q, want --width 1280", got)
	}
	if args[0] != DefaultJava {
		t.Errorf("java = %q, want %q", args[0], DefaultJava)
	}
}

func TestBuildServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  ServerRequest
		want []string
	}{
		{
			name: "vanilla",
			req:  ServerRequest{BaseVersion: "1.20.1"},
			want: []string{"java", "-jar", "minecraft_server.1.20.1.jar", "-nogui"},
		},
		{
			name: "overlay",
			req:  ServerRequest{BaseVersion: "1.20.1", Overlay: true},
			want: []string{"java", "-jar", "forge.jar", "-nogui"},
		},
		{
			name: "custom java and jvm args",
			req:  ServerRequest{Java: "java17", ExtraJVMArgs: []string{"-Xmx4G", "-Xms1G"}, BaseVersion: "1.20.1"},
			want: []string{"java17", "-Xmx4G", "-Xms1G", "-jar", "minecraft_server.1.20.1.jar", "-nogui"},
		},
	}

	for _, tt := range tests {
		if got := BuildServer(tt.req); !slices.Equal(got, tt.want) {
			t.Errorf("%s: BuildServer() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
