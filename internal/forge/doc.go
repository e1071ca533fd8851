// SPDX-License-Identifier: MPL-2.0

// Package forge holds the install tasks for the forge overlay: resolving
// the promoted build, fetching the universal jar, reading the manifest it
// embeds and downloading the libraries that manifest requires.
package forge
