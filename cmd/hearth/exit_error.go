// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

// ExitError carries the exit code of the game process up to Execute, so
// RunE handlers never call os.Exit themselves.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }
