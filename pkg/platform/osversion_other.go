// SPDX-License-Identifier: MPL-2.0

//go:build !unix && !windows

package platform

func detectOSVersion() string { return "" }
