// SPDX-License-Identifier: MPL-2.0

// Package config loads the global hearth settings with Viper, using CUE as
// the file format.
//
// The file is config.cue in the platform configuration directory
// ($XDG_CONFIG_HOME/hearth on Linux, ~/Library/Application Support/hearth
// on macOS, %APPDATA%\hearth on Windows). It is validated against the
// embedded config_schema.cue. Every key can be overridden from the
// environment as HEARTH_<KEY>, with dots replaced by underscores.
package config
