// SPDX-License-Identifier: MPL-2.0

// Package install assembles the task plans for client and server installs
// and records the result under the install root so the launcher can start
// the game without network access.
package install
