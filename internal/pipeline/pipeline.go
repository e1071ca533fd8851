// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	// EventStarted is emitted before a task executes.
	EventStarted EventKind = "started"
	// EventFinished is emitted after a task succeeds.
	EventFinished EventKind = "finished"
	// EventFailed is emitted after a task fails.
	EventFailed EventKind = "failed"
)

// ErrPrecondition is returned by a task whose inputs an earlier task should
// have produced.
var ErrPrecondition = errors.New("task precondition not met")

type (
	// Task is one named install step.
	Task interface {
		// Name is stable across releases, e.g. "forge.fetch_libraries".
		Name() string
		Execute(ctx context.Context, lc *Context) error
	}

	// TaskError wraps the failure of a named task.
	TaskError struct {
		Task string
		Err  error
	}

	// EventKind classifies an Event.
	EventKind string

	// Event reports task progress to an observer.
	Event struct {
		Kind  EventKind
		Task  string
		Index int
		Total int
		// Elapsed and Err are set for finished and failed events.
		Elapsed time.Duration
		Err     error
	}

	// Pipeline is an ordered list of tasks.
	Pipeline struct {
		tasks    []Task
		observer func(Event)
	}

	// Option configures a Pipeline.
	Option func(*Pipeline)
)

// Error implements the error interface.
func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Task, e.Err)
}

// Unwrap returns the task's error.
func (e *TaskError) Unwrap() error { return e.Err }

// WithObserver registers fn to receive an Event around every task. fn is
// called from the goroutine running the pipeline.
func WithObserver(fn func(Event)) Option {
	return func(p *Pipeline) { p.observer = fn }
}

// New creates a pipeline running tasks in the given order.
func New(tasks []Task, opts ...Option) *Pipeline {
	p := &Pipeline{tasks: tasks}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Names lists the task names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name()
	}
	return names
}

// Run executes every task in order against lc. It stops at the first error,
// which is returned as a *TaskError, and checks ctx between tasks.
func (p *Pipeline) Run(ctx context.Context, lc *Context) error {
	total := len(p.tasks)
	for i, t := range p.tasks {
		name := t.Name()
		if err := ctx.Err(); err != nil {
			return &TaskError{Task: name, Err: err}
		}

		p.emit(Event{Kind: EventStarted, Task: name, Index: i, Total: total})
		slog.Debug("task started", "task", name, "step", i+1, "of", total)

		start := time.Now()
		err := t.Execute(ctx, lc)
		elapsed := time.Since(start)

		if err != nil {
			p.emit(Event{Kind: EventFailed, Task: name, Index: i, Total: total, Elapsed: elapsed, Err: err})
			slog.Debug("task failed", "task", name, "elapsed", elapsed, "error", err)
			return &TaskError{Task: name, Err: err}
		}
		p.emit(Event{Kind: EventFinished, Task: name, Index: i, Total: total, Elapsed: elapsed})
		slog.Debug("task finished", "task", name, "elapsed", elapsed)
	}
	return nil
}

func (p *Pipeline) emit(e Event) {
	if p.observer != nil {
		p.observer(e)
	}
}

// Require returns an ErrPrecondition error naming what is missing when ok
// is false.
func Require(ok bool, what string) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPrecondition, what)
}
