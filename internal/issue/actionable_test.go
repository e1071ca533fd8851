// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "open install"}, "failed to open install"},
		{
			"with resource",
			&ActionableError{Operation: "open install", Resource: "./vanilla"},
			"failed to open install: ./vanilla",
		},
		{
			"with cause",
			&ActionableError{Operation: "load configuration", Cause: errors.New("bad syntax")},
			"failed to load configuration: bad syntax",
		},
		{
			"full",
			&ActionableError{Operation: "open install", Resource: "./vanilla", Cause: errors.New("no lock")},
			"failed to open install: ./vanilla: no lock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("connection reset")
	err := &ActionableError{
		Operation:   "install client",
		Suggestions: []string{"Re-run the install", "Configure a mirror"},
		Cause:       fmt.Errorf("minecraft.fetch_assets: %w", root),
	}

	short := err.Format(false)
	if !strings.Contains(short, "  • Re-run the install") || !strings.Contains(short, "  • Configure a mirror") {
		t.Errorf("suggestions missing:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("non-verbose output has the chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. minecraft.fetch_assets: connection reset") || !strings.Contains(long, "2. connection reset") {
		t.Errorf("verbose chain missing:\n%s", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build without operation should be nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError without operation = %v, want nil", err)
	}

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("launch game").
		WithResource("/srv/mc").
		WithSuggestion("a").
		WithSuggestions("b", "c").
		WithIssue(JavaNotFoundId).
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ActionableError, got %T", err)
	}
	if ae.Issue != JavaNotFoundId || len(ae.Suggestions) != 3 || !ae.HasSuggestions() {
		t.Errorf("built = %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "x") != nil {
		t.Error("nil error should stay nil")
	}
	if got := WrapWithOperation(errors.New("e"), "fetch versions").Error(); got != "failed to fetch versions: e" {
		t.Errorf("Error() = %q", got)
	}
}
