// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package platform

import "golang.org/x/sys/unix"

// detectOSVersion returns the macOS product version (e.g. "14.2.1"), which is
// what osx rules in manifests are written against. The kernel release is
// used when the sysctl is unavailable.
func detectOSVersion() string {
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		return v
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
