// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/hearthmc/hearth/internal/config"
	"github.com/hearthmc/hearth/internal/fetch"
	"github.com/hearthmc/hearth/internal/forge"
	"github.com/hearthmc/hearth/internal/issue"
	"github.com/hearthmc/hearth/internal/launch"
	"github.com/hearthmc/hearth/pkg/manifest"

	"github.com/mattn/go-isatty"
)

// classifyError picks the catalog entry that explains err, or zero.
func classifyError(err error) issue.Id {
	var (
		ae     *issue.ActionableError
		status *fetch.StatusError
		exit   *ExitError
	)
	switch {
	case errors.As(err, &ae) && ae.Issue != 0:
		return ae.Issue
	case errors.As(err, &exit):
		return issue.GameExitedId
	case errors.Is(err, manifest.ErrVersionNotFound):
		return issue.VersionNotFoundId
	case errors.Is(err, forge.ErrNoDistributionFound):
		return issue.NoForgeDistributionId
	case errors.Is(err, launch.ErrMissingAccount), errors.Is(err, launch.ErrMissingAccountField):
		return issue.AccountMissingId
	case errors.Is(err, launch.ErrMissingLock), errors.Is(err, launch.ErrMissingManifest):
		return issue.NotInstalledId
	case errors.Is(err, exec.ErrNotFound):
		return issue.JavaNotFoundId
	case errors.As(err, &status):
		return issue.DownloadFailedId
	default:
		return 0
	}
}

// formatErrorForDisplay uses ActionableError formatting when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderError prints err and, when one applies, the catalog guidance.
// A game that exited non-zero has already reported on its own streams, so
// only its exit code is printed.
func renderError(w io.Writer, err error, verbose bool, scheme config.ColorScheme) {
	var exit *ExitError
	if errors.As(err, &exit) && exit.Err == nil {
		fmt.Fprintf(w, "%s game exited with status %d\n", WarningStyle.Render("Warning:"), exit.Code)
		return
	}

	fmt.Fprintf(w, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	id := classifyError(err)
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(scheme.GlamourStyle(isTerminal(w)))
	if renderErr != nil {
		slog.Warn("failed to render issue guidance", "issue", id, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
