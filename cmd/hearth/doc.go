// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the hearth command line: installing game versions
// into a directory, launching them, and managing configuration.
package cmd
