// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"runtime"
	"testing"
	"time"
)

func runtimeIsWindowsOrDarwin() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if ok, errs := c.IsValid(); !ok {
			t.Errorf("%q should be valid: %v", c, errs)
		}
	}
	ok, errs := ColorScheme("sepia").IsValid()
	if ok || len(errs) != 1 || !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("sepia: ok=%v errs=%v", ok, errs)
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme ColorScheme
		tty    bool
		want   string
	}{
		{ColorSchemeAuto, true, "dark"},
		{ColorSchemeAuto, false, "notty"},
		{ColorSchemeDark, false, "dark"},
		{ColorSchemeLight, true, "light"},
	}
	for _, tt := range tests {
		if got := tt.scheme.GlamourStyle(tt.tty); got != tt.want {
			t.Errorf("%q.GlamourStyle(%v) = %q, want %q", tt.scheme, tt.tty, got, tt.want)
		}
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if ok, errs := DefaultConfig().IsValid(); !ok {
		t.Fatalf("default config invalid: %v", errs)
	}

	cfg := DefaultConfig()
	cfg.Downloads.Retries = 0
	cfg.Downloads.TimeoutSeconds = -1
	cfg.UI.ColorScheme = "plaid"

	ok, errs := cfg.IsValid()
	if ok || len(errs) != 1 {
		t.Fatalf("ok=%v errs=%v", ok, errs)
	}
	err := errs[0]
	for _, target := range []error{ErrInvalidConfig, ErrInvalidDownloads, ErrInvalidColorScheme} {
		if !errors.Is(err, target) {
			t.Errorf("error should wrap %v: %v", target, err)
		}
	}
	var dl *InvalidDownloadsConfigError
	if !errors.As(err, &dl) || len(dl.FieldErrors) != 2 {
		t.Errorf("downloads field errors = %+v", dl)
	}
}

func TestDownloadsConfig_Timeout(t *testing.T) {
	t.Parallel()

	if got := (DownloadsConfig{TimeoutSeconds: 90}).Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v", got)
	}
}
