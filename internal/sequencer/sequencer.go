package sequencer

import (
	"context"
	"fmt"
)

// Severity declares what a step failure does to the run. It is a property of
// the step itself, not of the call site.
type Severity int

const (
	// Recoverable failures are reported and the run continues.
	Recoverable Severity = iota
	// Fatal failures abort the run immediately.
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "recoverable"
}

// Step is one named provisioning action. Steps are idempotent: rerunning
// after a partial failure must converge to the same end state.
type Step struct {
	Name     string
	Severity Severity
	Run      func(ctx context.Context) error
}

type EventKind int

const (
	EventStarted EventKind = iota
	EventSucceeded
	EventWarned
	EventFailed
)

// Event reports step progress to whoever is watching (logger or TUI).
type Event struct {
	Kind  EventKind
	Step  string
	Index int
	Total int
	Err   error
}

// Runner executes steps strictly in order. There is one Runner per process
// and no concurrency between steps.
type Runner struct {
	steps  []Step
	events chan<- Event
}

// NewRunner builds a runner. events may be nil; when set, the channel is
// closed once the run finishes.
func NewRunner(steps []Step, events chan<- Event) *Runner {
	return &Runner{steps: steps, events: events}
}

// Run walks the step list. Recoverable failures are emitted and skipped
// over; a Fatal failure or a cancelled context ends the run with an error.
func (r *Runner) Run(ctx context.Context) error {
	if r.events != nil {
		defer close(r.events)
	}

	total := len(r.steps)
	for i, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run cancelled before step %s: %w", step.Name, err)
		}

		r.emit(Event{Kind: EventStarted, Step: step.Name, Index: i, Total: total})

		err := step.Run(ctx)
		if err == nil {
			r.emit(Event{Kind: EventSucceeded, Step: step.Name, Index: i, Total: total})
			continue
		}

		if step.Severity == Fatal {
			r.emit(Event{Kind: EventFailed, Step: step.Name, Index: i, Total: total, Err: err})
			return fmt.Errorf("step %s failed: %w", step.Name, err)
		}

		r.emit(Event{Kind: EventWarned, Step: step.Name, Index: i, Total: total, Err: err})
	}

	return nil
}

func (r *Runner) emit(ev Event) {
	if r.events != nil {
		r.events <- ev
	}
}
