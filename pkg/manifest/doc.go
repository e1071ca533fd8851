// SPDX-License-Identifier: MPL-2.0

// Package manifest models the remote documents an install is resolved from:
// the version list, the per-version client manifest, the asset index, the
// mod-loader (forge) manifest embedded in its universal jar, and the forge
// promotions index.
//
// Conditional launch arguments are represented as the sealed Argument sum
// type (Literal or Conditional); libraries and arguments carry rule lists
// from package rules.
package manifest
