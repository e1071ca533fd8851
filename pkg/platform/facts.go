// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"maps"
	"runtime"
	"sync"
)

// Well-known feature flags referenced by manifest argument rules.
const (
	FeatureCustomResolution = "has_custom_resolution"
	FeatureDemoUser         = "is_demo_user"
)

// osVersionOnce caches the host OS version for the lifetime of the process.
var osVersionOnce = sync.OnceValue(detectOSVersion)

// Facts is an immutable snapshot of the runtime platform. Rule evaluation
// only ever reads it; use WithFeatures to derive a copy with other flags.
type Facts struct {
	// OS is the launcher OS family name ("windows", "osx", "linux").
	OS string
	// OSVersion is the host OS version as reported by the kernel or system API.
	OSVersion string
	// Arch is the architecture name used in rules ("x86", "x86_64", "arm64").
	Arch string
	// WordSize is "32" or "64".
	WordSize string

	features map[string]bool
}

// Detect returns the facts for the current process with the given features
// enabled. The features map is copied.
func Detect(features map[string]bool) Facts {
	return Facts{
		OS:        OSName(runtime.GOOS),
		OSVersion: osVersionOnce(),
		Arch:      ArchName(runtime.GOARCH),
		WordSize:  WordSize(runtime.GOARCH),
		features:  maps.Clone(features),
	}
}

// Feature reports whether the named feature flag is enabled. Unknown flags
// read as false.
func (f Facts) Feature(name string) bool {
	return f.features[name]
}

// Features returns a copy of the enabled feature flags.
func (f Facts) Features() map[string]bool {
	return maps.Clone(f.features)
}

// WithFeatures returns a copy of f with its feature flags replaced.
func (f Facts) WithFeatures(features map[string]bool) Facts {
	f.features = maps.Clone(features)
	return f
}
