// SPDX-License-Identifier: MPL-2.0

// Package fetch retrieves remote documents and artifacts over HTTP.
//
// Downloads stream into a temporary file next to the destination and are
// renamed into place only once complete, so a file that exists under its
// final name is always whole. Transient failures (transport errors, 5xx
// and 429 responses) are retried with exponential backoff.
package fetch
