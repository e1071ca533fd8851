// SPDX-License-Identifier: MPL-2.0

// Package minecraft holds the install tasks for the base game: version
// resolution, the client manifest, libraries, the game jar, native
// libraries and assets.
package minecraft
