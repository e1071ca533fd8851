// SPDX-License-Identifier: MPL-2.0

package manifest

// Dynamic selector channels. Anything else is a concrete version id.
const (
	ChannelLatest         Selector = "latest"
	ChannelRecommended    Selector = "recommended"
	ChannelRelease        Selector = "release"
	ChannelSnapshot       Selector = "snapshot"
	ChannelLatestSnapshot Selector = "latest-snapshot"
)

// Selector pins a version either directly ("1.20.1", "47.1.0") or through a
// channel resolved against a remote index ("latest", "recommended").
type Selector string

// IsStatic reports whether the selector names a concrete version that can be
// bound without consulting a remote index.
func (s Selector) IsStatic() bool {
	switch s {
	case ChannelLatest, ChannelRecommended, ChannelRelease, ChannelSnapshot, ChannelLatestSnapshot:
		return false
	default:
		return s != ""
	}
}

// String returns the selector text.
func (s Selector) String() string { return string(s) }
