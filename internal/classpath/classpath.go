// SPDX-License-Identifier: MPL-2.0

// Package classpath builds the ordered, duplicate-free classpath of a
// client launch.
package classpath

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/hearthmc/hearth/internal/rules"
	"github.com/hearthmc/hearth/pkg/manifest"
	"github.com/hearthmc/hearth/pkg/platform"
)

// DefaultLibraryDir is where library artifacts live relative to the root.
const DefaultLibraryDir = "libraries"

// Input lists the classpath sources in precedence order.
type Input struct {
	// Extra entries come first, verbatim. They are root-relative.
	Extra []string
	// Libraries contribute their main artifact when their rules apply.
	Libraries []manifest.Library
	// GameJar is appended last.
	GameJar string
	// LibraryDir prefixes artifact paths; DefaultLibraryDir when empty.
	LibraryDir string
}

// Resolve returns root-relative, slash-separated classpath entries. Order
// is preserved and the first occurrence of a duplicate wins.
func Resolve(in Input, facts platform.Facts) []string {
	libDir := in.LibraryDir
	if libDir == "" {
		libDir = DefaultLibraryDir
	}

	seen := make(map[string]struct{}, len(in.Extra)+len(in.Libraries)+1)
	out := make([]string, 0, len(in.Extra)+len(in.Libraries)+1)
	add := func(entry string) {
		if _, dup := seen[entry]; dup {
			return
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}

	for _, e := range in.Extra {
		add(e)
	}
	for _, lib := range in.Libraries {
		art := lib.Downloads.Artifact
		if art == nil || art.Path == "" || !rules.Applies(lib.Rules, facts) {
			continue
		}
		add(path.Join(libDir, art.Path))
	}
	if in.GameJar != "" {
		add(in.GameJar)
	}
	return out
}

// Join makes entries absolute under root and joins them with the host list
// separator. Entries that are already absolute are kept.
func Join(root string, entries []string) string {
	abs := make([]string, len(entries))
	for i, e := range entries {
		p := filepath.FromSlash(e)
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		abs[i] = p
	}
	return strings.Join(abs, string(filepath.ListSeparator))
}
