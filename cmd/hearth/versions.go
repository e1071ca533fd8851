// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/hearthmc/hearth/pkg/manifest"

	"github.com/spf13/cobra"
)

const typeRelease = "release"

func newVersionsCommand(app *App) *cobra.Command {
	var (
		snapshots bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List installable game versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runConfigFrom(cmd)
			text, err := app.Remote(rc.Config).FetchText(cmd.Context(), mirrors(rc.Config).VersionManifest)
			if err != nil {
				return err
			}
			vl, err := manifest.ParseVersionList([]byte(text))
			if err != nil {
				return err
			}

			fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("latest release: "), CmdStyle.Render(vl.Latest.Release))
			if snapshots {
				fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("latest snapshot:"), CmdStyle.Render(vl.Latest.Snapshot))
			}
			fmt.Fprintln(app.stdout)

			shown := 0
			for _, v := range vl.Versions {
				if v.Type != typeRelease && !snapshots {
					continue
				}
				if limit > 0 && shown == limit {
					break
				}
				fmt.Fprintf(app.stdout, "%-24s %s\n", v.ID, SubtitleStyle.Render(v.Type))
				shown++
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&snapshots, "snapshots", false, "include snapshots and other non-release versions")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many versions (0 shows all)")
	return cmd
}
