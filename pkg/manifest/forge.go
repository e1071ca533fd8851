// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrInvalidCoordinate is returned for library names that are not maven
// coordinates.
var ErrInvalidCoordinate = errors.New("invalid maven coordinate")

type (
	// ForgeManifest is the version.json embedded in a forge universal jar. Its
	// libraries and arguments are layered on top of the base client manifest.
	ForgeManifest struct {
		ID                 string         `json:"id"`
		Type               string         `json:"type,omitempty"`
		InheritsFrom       string         `json:"inheritsFrom,omitempty"`
		MainClass          string         `json:"mainClass"`
		MinecraftArguments string         `json:"minecraftArguments,omitempty"`
		Libraries          []ForgeLibrary `json:"libraries"`
	}

	// ForgeLibrary is a maven artifact. ClientReq and ServerReq mark the
	// libraries forge expects the launcher to download; entries with neither
	// marker ship inside the universal jar or the base game.
	ForgeLibrary struct {
		Name      string   `json:"name"`
		URL       string   `json:"url,omitempty"`
		ClientReq *bool    `json:"clientreq,omitempty"`
		ServerReq *bool    `json:"serverreq,omitempty"`
		Checksums []string `json:"checksums,omitempty"`
	}
)

// ParseForge decodes a forge version.json.
func ParseForge(data []byte) (*ForgeManifest, error) {
	var m ForgeManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding forge manifest: %w", err)
	}
	return &m, nil
}

// GameArguments splits the legacy argument string into literal tokens.
func (m *ForgeManifest) GameArguments() ArgumentList {
	return Literals(strings.Fields(m.MinecraftArguments)...)
}

// Required reports whether the library carries any download marker.
func (l ForgeLibrary) Required() bool {
	return l.ClientReq != nil || l.ServerReq != nil
}

// ForClient reports whether the library belongs on the client classpath:
// explicitly required by the client, or carrying no marker at all.
func (l ForgeLibrary) ForClient() bool {
	if l.ClientReq != nil {
		return *l.ClientReq
	}
	return l.ServerReq == nil
}

// Path returns the library path relative to a maven repository root.
// Invalid coordinates yield an empty path; use MavenPath for the error.
func (l ForgeLibrary) Path() string {
	p, err := MavenPath(l.Name)
	if err != nil {
		return ""
	}
	return p
}

// MavenPath maps "group:artifact:version[:classifier][@ext]" to
// "group/as/dirs/artifact/version/artifact-version[-classifier].ext".
func MavenPath(coordinate string) (string, error) {
	ext := "jar"
	if at := strings.LastIndexByte(coordinate, '@'); at >= 0 {
		ext = coordinate[at+1:]
		coordinate = coordinate[:at]
	}

	parts := strings.Split(coordinate, ":")
	if len(parts) < 3 || len(parts) > 4 || ext == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
	}
	if !validMavenSegment(ext) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
	}
	for _, p := range parts[1:] {
		if !validMavenSegment(p) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
		}
	}
	for g := range strings.SplitSeq(parts[0], ".") {
		if !validMavenSegment(g) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
		}
	}

	group, artifact, version := parts[0], parts[1], parts[2]
	file := artifact + "-" + version
	if len(parts) == 4 {
		file += "-" + parts[3]
	}
	file += "." + ext

	return path.Join(strings.ReplaceAll(group, ".", "/"), artifact, version, file), nil
}

// validMavenSegment rejects parts that would escape or restructure the
// repository layout once joined into a path.
func validMavenSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, "/\\\x00")
}
