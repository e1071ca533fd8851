// SPDX-License-Identifier: MPL-2.0

package layout

import (
	"errors"
	"fmt"
	"path/filepath"
)

// File and directory names relative to an install root.
const (
	MetaDir             = ".hearth"
	ProfileFile         = "hearth.cue"
	LockFile            = "client.json"
	BaseManifestFile    = "minecraft.json"
	OverlayManifestFile = "forge.json"
	LaunchOptionsFile   = "launch.toml"

	LibrariesDir = "libraries"
	NativesDir   = "natives"
	AssetsDir    = "assets"

	ClientJar  = "minecraft.jar"
	OverlayJar = "forge.jar"
)

const (
	// TargetClient installs the desktop game.
	TargetClient Target = "client"
	// TargetServer installs the dedicated server.
	TargetServer Target = "server"
)

// ErrInvalidTarget is returned for targets other than client and server.
var ErrInvalidTarget = errors.New("invalid target")

type (
	// Target selects the client or the dedicated server distribution.
	Target string

	// Root is an install root directory.
	Root string
)

// ParseTarget validates s as a Target.
func ParseTarget(s string) (Target, error) {
	t := Target(s)
	if t != TargetClient && t != TargetServer {
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidTarget, s, TargetClient, TargetServer)
	}
	return t, nil
}

// String returns the target name.
func (t Target) String() string { return string(t) }

// ServerJar returns the file name of the server jar for a base version.
func ServerJar(version string) string {
	return "minecraft_server." + version + ".jar"
}

// Join joins elements onto the root using the host separator. Elements may
// use forward slashes.
func (r Root) Join(elem ...string) string {
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, string(r))
	for _, e := range elem {
		parts = append(parts, filepath.FromSlash(e))
	}
	return filepath.Join(parts...)
}

// Meta returns the location of a file in the metadata directory.
func (r Root) Meta(name string) string { return r.Join(MetaDir, name) }

func (r Root) Profile() string         { return r.Join(ProfileFile) }
func (r Root) Lock() string            { return r.Meta(LockFile) }
func (r Root) BaseManifest() string    { return r.Meta(BaseManifestFile) }
func (r Root) OverlayManifest() string { return r.Meta(OverlayManifestFile) }
func (r Root) LaunchOptions() string   { return r.Meta(LaunchOptionsFile) }

// Library returns the location of a library given its maven-relative path.
func (r Root) Library(rel string) string { return r.Join(LibrariesDir, rel) }

func (r Root) Natives() string { return r.Join(NativesDir) }

// AssetIndex returns the location of the asset index with the given id.
func (r Root) AssetIndex(id string) string {
	return r.Join(AssetsDir, "indexes", id+".json")
}

// AssetObject returns the location of an asset object given its
// "<hh>/<hash>" path.
func (r Root) AssetObject(rel string) string {
	return r.Join(AssetsDir, "objects", rel)
}
