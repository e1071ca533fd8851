// SPDX-License-Identifier: MPL-2.0

// Package expand substitutes ${name} markers in launch argument templates.
//
// Expansion is deliberately lenient: a marker whose name is not bound expands
// to the empty string instead of failing, and substituted text is never
// scanned again, so a value containing "${x}" is emitted literally.
package expand

import (
	"regexp"
)

var markerPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand replaces every ${name} marker in template with vars[name].
func Expand(template string, vars map[string]string) string {
	return markerPattern.ReplaceAllStringFunc(template, func(m string) string {
		return vars[m[2:len(m)-1]]
	})
}

// All expands each token and returns the results in a new slice.
func All(tokens []string, vars map[string]string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Expand(tok, vars)
	}
	return out
}
