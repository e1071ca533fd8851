// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers shared across packages: an
// in-memory Remote that records requests, zip archive builders, and
// environment overrides that restore themselves on cleanup.
package testutil
