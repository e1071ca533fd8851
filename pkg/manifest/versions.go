// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrVersionNotFound is returned when a selector does not resolve to a
// version in the version list.
var ErrVersionNotFound = errors.New("version not found")

type (
	// VersionList is the top-level index of every published game version.
	VersionList struct {
		Latest   LatestVersions `json:"latest"`
		Versions []VersionEntry `json:"versions"`
	}

	// LatestVersions names the newest release and snapshot.
	LatestVersions struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	}

	// VersionEntry locates the client manifest of one version.
	VersionEntry struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		URL         string `json:"url"`
		ReleaseTime string `json:"releaseTime,omitempty"`
	}
)

// ParseVersionList decodes the version list.
func ParseVersionList(data []byte) (*VersionList, error) {
	var vl VersionList
	if err := json.Unmarshal(data, &vl); err != nil {
		return nil, fmt.Errorf("decoding version list: %w", err)
	}
	return &vl, nil
}

// Resolve maps a selector to a version entry. "latest", "release" and
// "recommended" select the newest release; "snapshot" and "latest-snapshot"
// the newest snapshot. Static selectors are looked up by id.
func (vl *VersionList) Resolve(sel Selector) (*VersionEntry, error) {
	id := string(sel)
	switch sel {
	case ChannelLatest, ChannelRelease, ChannelRecommended:
		id = vl.Latest.Release
	case ChannelSnapshot, ChannelLatestSnapshot:
		id = vl.Latest.Snapshot
	}

	for i := range vl.Versions {
		if vl.Versions[i].ID == id {
			return &vl.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrVersionNotFound, sel)
}
