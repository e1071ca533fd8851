// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/hearthmc/hearth/internal/config"
	"github.com/hearthmc/hearth/internal/fetch"
	"github.com/hearthmc/hearth/internal/forge"
	"github.com/hearthmc/hearth/internal/issue"
	"github.com/hearthmc/hearth/internal/launch"
	"github.com/hearthmc/hearth/internal/pipeline"
	"github.com/hearthmc/hearth/pkg/manifest"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "actionable error with issue",
			err: issue.NewErrorContext().
				WithOperation("prepare install root").
				WithIssue(issue.InstallRootInvalidId).
				Wrap(errors.New("denied")).
				BuildError(),
			want: issue.InstallRootInvalidId,
		},
		{
			name: "actionable error wrapped by the command layer",
			err: fmt.Errorf("hearth: %w", issue.NewErrorContext().
				WithOperation("prepare install root").
				WithIssue(issue.InstallRootInvalidId).
				Wrap(&pipeline.TaskError{Task: "minecraft.fetch_jar", Err: errors.New("denied")}).
				BuildError()),
			want: issue.InstallRootInvalidId,
		},
		{
			name: "version not found inside a task",
			err:  &pipeline.TaskError{Task: "minecraft.fetch_versions", Err: fmt.Errorf("%w: %q", manifest.ErrVersionNotFound, "0.0.1")},
			want: issue.VersionNotFoundId,
		},
		{
			name: "no forge distribution",
			err:  &pipeline.TaskError{Task: forge.NameFetchVersions, Err: &forge.NoDistributionError{Key: "snapshot"}},
			want: issue.NoForgeDistributionId,
		},
		{
			name: "missing account",
			err:  launch.ErrMissingAccount,
			want: issue.AccountMissingId,
		},
		{
			name: "missing account field",
			err:  &launch.MissingAccountFieldError{Field: "uuid"},
			want: issue.AccountMissingId,
		},
		{
			name: "missing lock",
			err:  fmt.Errorf("%w: gone", launch.ErrMissingLock),
			want: issue.NotInstalledId,
		},
		{
			name: "java not found",
			err:  fmt.Errorf("failed to start java: %w", &exec.Error{Name: "java", Err: exec.ErrNotFound}),
			want: issue.JavaNotFoundId,
		},
		{
			name: "http status",
			err:  &pipeline.TaskError{Task: "minecraft.fetch_jar", Err: &fetch.StatusError{URL: "https://x.invalid", StatusCode: 503}},
			want: issue.DownloadFailedId,
		},
		{
			name: "game exit",
			err:  &ExitError{Code: 3},
			want: issue.GameExitedId,
		},
		{
			name: "unknown",
			err:  errors.New("something else"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err == nil {
				t.Fatal("test error is nil")
			}
			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	t.Run("game exit prints only the status", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		renderError(&buf, &ExitError{Code: 2}, false, config.ColorSchemeAuto)
		if !strings.Contains(buf.String(), "status 2") {
			t.Errorf("output = %q", buf.String())
		}
		if strings.Contains(buf.String(), "Error:") {
			t.Errorf("game exit rendered as an error: %q", buf.String())
		}
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		renderError(&buf, errors.New("disk on fire"), false, config.ColorSchemeAuto)
		if !strings.Contains(buf.String(), "disk on fire") {
			t.Errorf("output = %q", buf.String())
		}
	})
}
