// SPDX-License-Identifier: MPL-2.0

// Package launch turns an installed root into a running game.
//
// BuildClient and BuildServer are pure: they compute the argument vector
// from an already-loaded lock, manifest and account. Open loads those
// inputs from an install root, and Launcher spawns the resulting command
// with the root as working directory and the host's output streams.
package launch
