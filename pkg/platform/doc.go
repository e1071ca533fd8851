// SPDX-License-Identifier: MPL-2.0

// Package platform describes the host the launcher runs on.
//
// Facts is the immutable snapshot consumed by rule evaluation: the launcher
// OS family name, OS version, CPU architecture, word size and the optional
// feature flags a launch enables. The package also detects application
// sandboxes (Flatpak, Snap) so processes can be spawned on the host.
package platform
