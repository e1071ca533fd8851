// SPDX-License-Identifier: MPL-2.0

// Package issue carries user-facing failures: ActionableError pairs an
// error with the operation, the resource and hints for fixing it, and the
// catalog holds longer Markdown guidance rendered with glamour.
package issue
