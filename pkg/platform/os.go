// SPDX-License-Identifier: MPL-2.0

package platform

// runtime.GOOS values compared throughout the codebase.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Launcher OS family names, as they appear in manifest rules and native
// classifier maps.
const (
	OSWindows = "windows"
	OSX       = "osx"
	OSLinux   = "linux"
)

// OSName maps a runtime.GOOS value to the launcher OS family name. Unknown
// systems map to themselves, which never matches a manifest rule.
func OSName(goos string) string {
	switch goos {
	case Windows:
		return OSWindows
	case Darwin:
		return OSX
	case Linux, "freebsd", "openbsd", "netbsd":
		return OSLinux
	default:
		return goos
	}
}

// ArchName maps a runtime.GOARCH value to the architecture name used by
// manifest rules.
func ArchName(goarch string) string {
	switch goarch {
	case "386":
		return "x86"
	case "amd64":
		return "x86_64"
	case "arm":
		return "arm32"
	default:
		return goarch
	}
}

// WordSize returns "32" or "64" for a runtime.GOARCH value.
func WordSize(goarch string) string {
	switch goarch {
	case "386", "arm", "mips", "mipsle", "wasm":
		return "32"
	default:
		return "64"
	}
}
