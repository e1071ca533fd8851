// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Every CUE file hearth reads (the global config and the per-install
// profile) goes through the same flow: compile the schema, unify the user
// document with one of its definitions, validate, and decode into a Go
// value. Errors carry the offending field path in JSON notation.
//
//	//go:embed profile_schema.cue
//	var profileSchema []byte
//
//	res, err := cueutil.ParseAndDecode[Profile](profileSchema, data, "#Profile",
//	    cueutil.WithFilename("hearth.cue"))
package cueutil
