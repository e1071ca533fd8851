// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hearthmc/hearth/internal/rules"
)

type (
	// ClientManifest is the per-version manifest describing libraries, launch
	// arguments, the main class and the downloadable game jars.
	ClientManifest struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"`
		MainClass string    `json:"mainClass"`
		Libraries []Library `json:"libraries"`
		// Arguments is set by manifests from 1.13 on.
		Arguments *Arguments `json:"arguments,omitempty"`
		// MinecraftArguments is the legacy whitespace-separated game argument
		// string used before Arguments existed.
		MinecraftArguments string        `json:"minecraftArguments,omitempty"`
		AssetIndex         *AssetRef     `json:"assetIndex,omitempty"`
		Assets             string        `json:"assets,omitempty"`
		Downloads          GameDownloads `json:"downloads"`
		JavaVersion        *JavaVersion  `json:"javaVersion,omitempty"`
	}

	// Arguments holds the modern game and JVM argument lists.
	Arguments struct {
		Game ArgumentList `json:"game"`
		JVM  ArgumentList `json:"jvm"`
	}

	// GameDownloads lists the primary game archives.
	GameDownloads struct {
		Client *Download `json:"client,omitempty"`
		Server *Download `json:"server,omitempty"`
	}

	// Download is a single remote file.
	Download struct {
		URL  string `json:"url"`
		SHA1 string `json:"sha1,omitempty"`
		Size int64  `json:"size,omitempty"`
	}

	// Artifact is a Download with its path relative to the libraries directory.
	Artifact struct {
		Path string `json:"path"`
		Download
	}

	// AssetRef points at the asset index a version uses.
	AssetRef struct {
		ID        string `json:"id"`
		TotalSize int64  `json:"totalSize,omitempty"`
		Download
	}

	// JavaVersion is the runtime the version was built for.
	JavaVersion struct {
		Component    string `json:"component"`
		MajorVersion int    `json:"majorVersion"`
	}

	// Library is a single classpath or native artifact.
	Library struct {
		Name      string            `json:"name"`
		Downloads LibraryDownloads  `json:"downloads"`
		Natives   map[string]string `json:"natives,omitempty"`
		Extract   *Extract          `json:"extract,omitempty"`
		Rules     []rules.Rule      `json:"rules,omitempty"`
	}

	// LibraryDownloads holds the main artifact and native classifier artifacts.
	LibraryDownloads struct {
		Artifact    *Artifact           `json:"artifact,omitempty"`
		Classifiers map[string]Artifact `json:"classifiers,omitempty"`
	}

	// Extract controls which entries of a native archive are unpacked.
	Extract struct {
		Exclude []string `json:"exclude,omitempty"`
	}
)

// legacyJVMArguments is used for manifests that predate the arguments block.
var legacyJVMArguments = []string{
	"-Djava.library.path=${natives_directory}",
	"-cp",
	"${classpath}",
}

// ParseClient decodes a client manifest.
func ParseClient(data []byte) (*ClientManifest, error) {
	var m ClientManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding client manifest: %w", err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("decoding client manifest: missing id")
	}
	return &m, nil
}

// GameArguments returns the game arguments, splitting the legacy string form
// when the manifest has no arguments block.
func (m *ClientManifest) GameArguments() ArgumentList {
	if m.Arguments != nil {
		return m.Arguments.Game
	}
	return Literals(strings.Fields(m.MinecraftArguments)...)
}

// JVMArguments returns the JVM arguments, falling back to the fixed legacy
// set that wires the natives directory and classpath.
func (m *ClientManifest) JVMArguments() ArgumentList {
	if m.Arguments != nil && len(m.Arguments.JVM) > 0 {
		return m.Arguments.JVM
	}
	return Literals(legacyJVMArguments...)
}

// NativeClassifier returns the classifier key of the native artifact for the
// given launcher OS, or "" when the library has none. The key may still
// contain the ${arch} marker.
func (l Library) NativeClassifier(osName string) string {
	if l.Natives == nil {
		return ""
	}
	return l.Natives[osName]
}
