// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// ColorSchemeAuto picks dark or light from the terminal.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	// DefaultConcurrency bounds parallel downloads per step.
	DefaultConcurrency = 8
	// DefaultRetries is the number of attempts per request.
	DefaultRetries = 3
	// DefaultTimeoutSeconds is the per-request timeout.
	DefaultTimeoutSeconds = 60
)

var (
	// ErrInvalidColorScheme is returned for unknown color schemes.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDownloads is wrapped by InvalidDownloadsConfigError.
	ErrInvalidDownloads = errors.New("invalid downloads config")
	// ErrInvalidConfig is wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the palette of rendered guidance.
	ColorScheme string

	// InvalidColorSchemeError wraps ErrInvalidColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidDownloadsConfigError lists the offending download settings.
	InvalidDownloadsConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects every field error of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the global configuration.
	Config struct {
		// Java is used when an install's launch.toml names none.
		Java string `json:"java" mapstructure:"java"`
		// JVMArgs precede the JVM arguments of every install.
		JVMArgs   []string        `json:"jvm_args" mapstructure:"jvm_args"`
		Downloads DownloadsConfig `json:"downloads" mapstructure:"downloads"`
		Mirrors   MirrorsConfig   `json:"mirrors" mapstructure:"mirrors"`
		UI        UIConfig        `json:"ui" mapstructure:"ui"`
	}

	// DownloadsConfig tunes the network layer.
	DownloadsConfig struct {
		// Concurrency of 0 or less means unbounded.
		Concurrency       int `json:"concurrency" mapstructure:"concurrency"`
		Retries           int `json:"retries" mapstructure:"retries"`
		TimeoutSeconds    int `json:"timeout_seconds" mapstructure:"timeout_seconds"`
		// RequestsPerSecond caps request starts across all workers; 0 means
		// no cap.
		RequestsPerSecond int `json:"requests_per_second" mapstructure:"requests_per_second"`
	}

	// MirrorsConfig replaces official hosts. Empty fields keep the default.
	MirrorsConfig struct {
		VersionManifest string `json:"version_manifest" mapstructure:"version_manifest"`
		Libraries       string `json:"libraries" mapstructure:"libraries"`
		Resources       string `json:"resources" mapstructure:"resources"`
		ForgeMaven      string `json:"forge_maven" mapstructure:"forge_maven"`
		ForgePromotions string `json:"forge_promotions" mapstructure:"forge_promotions"`
	}

	// UIConfig holds terminal preferences.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Java:    "java",
		JVMArgs: []string{},
		Downloads: DownloadsConfig{
			Concurrency:    DefaultConcurrency,
			Retries:        DefaultRetries,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		UI: UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

func (c ColorScheme) String() string { return string(c) }

// IsValid reports whether c is a known scheme.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// GlamourStyle maps the scheme to a glamour style name. Auto follows the
// terminal: "dark" when interactive, "notty" otherwise.
func (c ColorScheme) GlamourStyle(tty bool) string {
	switch {
	case c == ColorSchemeLight:
		return "light"
	case c == ColorSchemeDark || tty:
		return "dark"
	default:
		return "notty"
	}
}

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Timeout returns the per-request timeout; zero disables it.
func (d DownloadsConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// IsValid checks the values CUE cannot see once the environment has
// overridden them.
func (d DownloadsConfig) IsValid() (bool, []error) {
	var errs []error
	if d.Retries < 1 {
		errs = append(errs, fmt.Errorf("downloads.retries must be at least 1, got %d", d.Retries))
	}
	if d.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("downloads.timeout_seconds must not be negative, got %d", d.TimeoutSeconds))
	}
	if d.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("downloads.requests_per_second must not be negative, got %d", d.RequestsPerSecond))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidDownloadsConfigError{FieldErrors: errs}}
	}
	return true, nil
}

func (e *InvalidDownloadsConfigError) Error() string {
	return fmt.Sprintf("invalid downloads config: %v", errors.Join(e.FieldErrors...))
}

func (e *InvalidDownloadsConfigError) Unwrap() error { return ErrInvalidDownloads }

// IsValid validates every section.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.Downloads.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
