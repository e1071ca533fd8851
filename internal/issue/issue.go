// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Id identifies a catalog entry.
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InstallRootInvalidId
	NotInstalledId
	VersionNotFoundId
	NoForgeDistributionId
	DownloadFailedId
	JavaNotFoundId
	AccountMissingId
	GameExitedId
)

type (
	// MarkdownMsg is guidance text in Markdown.
	MarkdownMsg string

	// HttpLink is an absolute URL.
	HttpLink string

	// Issue is a catalog entry: a Markdown explanation and related links.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the catalog key.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the related links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render formats the guidance for the terminal with the named glamour
// style ("dark", "light", "notty", or a JSON style path).
func (i *Issue) Render(style string) (string, error) {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(sb.String(), style)
}

var (
	render = glamour.Render

	issues = map[Id]*Issue{
		ConfigLoadFailedId: {
			id: ConfigLoadFailedId,
			mdMsg: `
# Configuration could not be loaded

hearth reads ` + "`config.cue`" + ` from its configuration directory and validates it
against the built-in schema.

## Things you can try
- Show the effective configuration:
~~~
$ hearth config show
~~~
- Print the default file and compare:
~~~
$ hearth config init --print
~~~
- Point at another file with ` + "`--config`" + `, or remove the broken one.`,
		},
		InstallRootInvalidId: {
			id: InstallRootInvalidId,
			mdMsg: `
# Install directory is not usable

The directory given with ` + "`--root`" + ` could not be resolved or created.

## Things you can try
- Check that the parent directory exists and is writable.
- Use an absolute path.`,
		},
		NotInstalledId: {
			id: NotInstalledId,
			mdMsg: `
# Nothing is installed here

Launching needs ` + "`hearth.cue`" + ` and, for clients, ` + "`.hearth/client.json`" + `
and ` + "`.hearth/minecraft.json`" + ` in the install directory. These are written by
the last step of an install.

## Things you can try
~~~
$ hearth install --root <dir> --minecraft latest
~~~`,
		},
		VersionNotFoundId: {
			id: VersionNotFoundId,
			mdMsg: `
# Unknown game version

The requested version is not in the version list.

## Things you can try
- List what is available:
~~~
$ hearth versions
~~~
- Use a channel instead: ` + "`latest`, `release`, `snapshot`" + `.`,
			docLinks: []HttpLink{"https://minecraft.wiki/w/Version_manifest.json"},
		},
		NoForgeDistributionId: {
			id: NoForgeDistributionId,
			mdMsg: `
# No forge build is promoted for that channel

Channel selectors such as ` + "`recommended`" + ` are looked up in the forge promotions
list, first for the pinned game version and then on their own.

## Things you can try
- Pick ` + "`latest`" + ` instead of ` + "`recommended`" + `.
- Pass an exact forge version with ` + "`--forge`" + `.`,
			docLinks: []HttpLink{"https://files.minecraftforge.net/"},
		},
		DownloadFailedId: {
			id: DownloadFailedId,
			mdMsg: `
# A download failed

Files that were already fetched are kept, so re-running the install only
fetches what is missing.

## Things you can try
- Re-run the same install command.
- Configure a mirror under ` + "`mirrors`" + ` in ` + "`config.cue`" + `.
- Lower ` + "`downloads.concurrency`" + ` on slow connections.`,
		},
		JavaNotFoundId: {
			id: JavaNotFoundId,
			mdMsg: `
# Java could not be started

## Things you can try
- Install a Java runtime matching the game version.
- Set ` + "`java`" + ` in ` + "`.hearth/launch.toml`" + ` or in ` + "`config.cue`" + ` to the full path of
  the executable.`,
		},
		AccountMissingId: {
			id: AccountMissingId,
			mdMsg: `
# No account to launch with

Clients need a player name and UUID.

## Things you can try
~~~
$ hearth launch --root <dir> --offline <name>
~~~`,
		},
		GameExitedId: {
			id: GameExitedId,
			mdMsg: `
# The game exited with an error

The game's own output above usually names the cause.

## Things you can try
- Raise the heap with ` + "`jvm_args = \"-Xmx4G\"`" + ` in ` + "`.hearth/launch.toml`" + `.
- Check that the Java version suits the game version.`,
		},
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
