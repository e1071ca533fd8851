// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

const (
	// SandboxNone indicates no sandbox environment was detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches sandbox detection for the lifetime of the process.
// detectSandboxFrom must not panic: sync.OnceValue re-panics on every call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the application sandbox, if any.
type SandboxType string

// DetectSandbox returns the sandbox the current process runs in. The result
// is cached after the first call.
func DetectSandbox() SandboxType {
	return detectOnce()
}

// HostCommand rewrites argv so that it runs on the host rather than inside
// the sandbox. Inside Flatpak the game JVM lives on the host and must be
// reached through flatpak-spawn. Snap confinement has no host escape, so argv
// is returned unchanged there and outside any sandbox.
func HostCommand(st SandboxType, argv []string) []string {
	switch st {
	case SandboxFlatpak:
		out := make([]string, 0, len(argv)+2)
		out = append(out, "flatpak-spawn", "--host")
		return append(out, argv...)
	case SandboxNone, SandboxSnap:
		return argv
	default:
		return argv
	}
}

// detectSandboxFrom performs detection with injected lookups so tests do not
// touch process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// /.flatpak-info is present in every Flatpak sandbox and takes precedence.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
