// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAccount is returned when a client launch has no account.
	ErrMissingAccount = errors.New("an account is required to launch the client")
	// ErrMissingAccountField is the sentinel wrapped by MissingAccountFieldError.
	ErrMissingAccountField = errors.New("account is missing a required field")
	// ErrMissingLock is returned when a client launch has no lock.
	ErrMissingLock = errors.New("install has no launch lock")
	// ErrMissingManifest is returned when a client launch has no base manifest.
	ErrMissingManifest = errors.New("install has no base manifest")
	// ErrEmptyCommand is returned when asked to start an empty argument vector.
	ErrEmptyCommand = errors.New("empty command")
)

// MissingAccountFieldError names the account field that was empty.
// It wraps ErrMissingAccountField for errors.Is() compatibility.
type MissingAccountFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingAccountFieldError) Error() string {
	return fmt.Sprintf("account has no %s (is this a demo account?)", e.Field)
}

// Unwrap returns ErrMissingAccountField.
func (e *MissingAccountFieldError) Unwrap() error { return ErrMissingAccountField }
