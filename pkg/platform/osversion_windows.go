// SPDX-License-Identifier: MPL-2.0

//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// detectOSVersion returns "<major>.<minor>" as reported by RtlGetVersion,
// which is not subject to the compatibility shims of GetVersionEx.
func detectOSVersion() string {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("%d.%d", v.MajorVersion, v.MinorVersion)
}
