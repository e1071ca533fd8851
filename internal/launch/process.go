// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"time"
)

// StopGracePeriod is how long a cancelled game gets to exit after the
// interrupt before it is killed.
const StopGracePeriod = 30 * time.Second

type (
	// Launcher starts game processes. Zero values of the stream fields mean
	// the host's own streams.
	Launcher struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Wrap rewrites the argument vector before it is started, for
		// example to escape a sandbox.
		Wrap func([]string) []string
	}

	// Process is a started game process.
	Process struct {
		cmd *exec.Cmd
	}
)

// Start spawns args[0] with args[1:] in dir. Output is streamed, never
// captured. Cancelling ctx interrupts the process so the game can save,
// and kills it if it is still running after StopGracePeriod.
func (l *Launcher) Start(ctx context.Context, args []string, dir string) (*Process, error) {
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	if l.Wrap != nil {
		args = l.Wrap(args)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = StopGracePeriod
	cmd.Dir = dir
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", args[0], err)
	}
	slog.Debug("process started", "pid", cmd.Process.Pid, "dir", dir, "argc", len(args))
	return &Process{cmd: cmd}, nil
}

// Pid returns the operating system process id.
func (p *Process) Pid() int { return p.cmd.Process.Pid }

// Kill terminates the process immediately.
func (p *Process) Kill() error { return p.cmd.Process.Kill() }

// Wait blocks until the process exits and returns its exit code. A
// non-zero exit is not an error; err is set only when waiting failed. A
// process killed by a signal reports 128 plus the signal number.
func (p *Process) Wait() (int, error) {
	err := p.cmd.Wait()
	state := p.cmd.ProcessState
	if state == nil {
		return 1, fmt.Errorf("waiting for process: %w", err)
	}
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return exitCode(state), nil
	}
	return exitCode(state), fmt.Errorf("waiting for process: %w", err)
}

func exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
