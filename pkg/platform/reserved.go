// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// reservedNames are device names Windows refuses as file names whatever
// their extension.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name, ignoring case and everything
// from its first dot, is a Windows device name.
func IsWindowsReservedName(name string) bool {
	stem, _, _ := strings.Cut(name, ".")
	return reservedNames[strings.ToUpper(stem)]
}

// HasWindowsReservedElement reports whether any element of the slash
// separated path is a Windows device name.
func HasWindowsReservedElement(path string) bool {
	for elem := range strings.SplitSeq(path, "/") {
		if IsWindowsReservedName(elem) {
			return true
		}
	}
	return false
}
