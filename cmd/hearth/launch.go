// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/hearthmc/hearth/internal/issue"
	"github.com/hearthmc/hearth/internal/launch"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

type accountFlags struct {
	root    string
	offline string
	uuid    string
	name    string
	token   string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "install directory")
	cmd.Flags().StringVar(&f.offline, "offline", "", "play offline under this player name")
	cmd.Flags().StringVar(&f.uuid, "uuid", "", "account UUID")
	cmd.Flags().StringVar(&f.name, "name", "", "account display name")
	cmd.Flags().StringVar(&f.token, "token", "", "account access token")
	cmd.MarkFlagsMutuallyExclusive("offline", "uuid")
	cmd.MarkFlagsMutuallyExclusive("offline", "token")
	_ = cmd.MarkFlagRequired("root")
}

// account returns nil when no identity was given, which is only valid for
// servers.
func (f *accountFlags) account() *launch.Account {
	switch {
	case f.offline != "":
		return launch.OfflineAccount(f.offline)
	case f.uuid != "" || f.name != "" || f.token != "":
		return &launch.Account{UUID: f.uuid, DisplayName: f.name, AccessToken: f.token}
	default:
		return nil
	}
}

func newLaunchCommand(app *App) *cobra.Command {
	flags := &accountFlags{}
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start an installed game",
		Long: `Start an installed game.

Launching never touches the network. Clients need an account: either
--offline <name> or --uuid, --name and --token from your own login flow.
The exit status of the game becomes the exit status of hearth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, app, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func newArgsCommand(app *App) *cobra.Command {
	flags := &accountFlags{}
	cmd := &cobra.Command{
		Use:   "args",
		Short: "Print the command line launch would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runConfigFrom(cmd)
			in, err := openInstall(flags.root)
			if err != nil {
				return err
			}
			argv, err := in.Args(flags.account(), launch.Defaults{Java: rc.Java, JVMArgs: rc.JVMArgs})
			if err != nil {
				return err
			}
			line, err := quoteArgs(argv)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, line)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func runLaunch(cmd *cobra.Command, app *App, flags *accountFlags) error {
	rc := runConfigFrom(cmd)
	in, err := openInstall(flags.root)
	if err != nil {
		return err
	}

	proc, err := in.Launch(cmd.Context(), app.Launcher, flags.account(), launch.Defaults{Java: rc.Java, JVMArgs: rc.JVMArgs})
	if err != nil {
		return err
	}
	slog.Info("game started", "pid", proc.Pid(), "version", in.Profile.Minecraft, "target", in.Profile.Target)

	code, err := proc.Wait()
	if err != nil {
		return &ExitError{Code: code, Err: err}
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// openInstall loads root and explains a directory that holds no install.
func openInstall(root string) (*launch.Install, error) {
	in, err := launch.Open(root)
	if err == nil {
		return in, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, issue.NewErrorContext().
			WithOperation("open install").
			WithResource(root).
			WithSuggestions(
				"Check the --root path",
				"Run 'hearth install --root "+root+"' first",
			).
			WithIssue(issue.NotInstalledId).
			Wrap(err).
			BuildError()
	}
	return nil, err
}

// quoteArgs renders argv as a line a POSIX shell would split back into argv.
func quoteArgs(argv []string) (string, error) {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("quoting argument %d: %w", i, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
