// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"testing"
)

func TestOSName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want string
	}{
		{"windows", OSWindows},
		{"darwin", OSX},
		{"linux", OSLinux},
		{"freebsd", OSLinux},
		{"plan9", "plan9"},
	}

	for _, tt := range tests {
		if got := OSName(tt.goos); got != tt.want {
			t.Errorf("OSName(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestArchNameAndWordSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goarch   string
		arch     string
		wordSize string
	}{
		{"386", "x86", "32"},
		{"amd64", "x86_64", "64"},
		{"arm64", "arm64", "64"},
		{"arm", "arm32", "32"},
	}

	for _, tt := range tests {
		if got := ArchName(tt.goarch); got != tt.arch {
			t.Errorf("ArchName(%q) = %q, want %q", tt.goarch, got, tt.arch)
		}
		if got := WordSize(tt.goarch); got != tt.wordSize {
			t.Errorf("WordSize(%q) = %q, want %q", tt.goarch, got, tt.wordSize)
		}
	}
}

func TestDetect_CopiesFeatures(t *testing.T) {
	t.Parallel()

	features := map[string]bool{FeatureDemoUser: true}
	facts := Detect(features)

	features[FeatureDemoUser] = false
	features[FeatureCustomResolution] = true

	if !facts.Feature(FeatureDemoUser) {
		t.Error("facts must not observe mutations of the caller's map")
	}
	if facts.Feature(FeatureCustomResolution) {
		t.Error("unknown feature must read as false")
	}
	if facts.OS != OSName(runtime.GOOS) {
		t.Errorf("OS = %q, want %q", facts.OS, OSName(runtime.GOOS))
	}

	copied := facts.Features()
	copied[FeatureDemoUser] = false
	if !facts.Feature(FeatureDemoUser) {
		t.Error("Features() must return a copy")
	}
}

func TestFacts_WithFeatures(t *testing.T) {
	t.Parallel()

	base := Facts{OS: OSLinux, Arch: "x86_64", WordSize: "64"}
	derived := base.WithFeatures(map[string]bool{FeatureCustomResolution: true})

	if base.Feature(FeatureCustomResolution) {
		t.Error("WithFeatures must not modify the receiver")
	}
	if !derived.Feature(FeatureCustomResolution) || derived.OS != OSLinux {
		t.Errorf("unexpected derived facts: %+v", derived)
	}
}
