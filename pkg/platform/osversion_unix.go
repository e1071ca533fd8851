// SPDX-License-Identifier: MPL-2.0

//go:build unix && !darwin

package platform

import "golang.org/x/sys/unix"

// detectOSVersion returns the kernel release, e.g. "6.8.0-45-generic".
func detectOSVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
