// Package wizard owns the ordered steps of the decision aid and which one
// is active.
package wizard

import (
	"errors"
	"fmt"
)

// ErrStepNotFound is returned when a step outside 1..N is requested.
var ErrStepNotFound = errors.New("step not found")

// StepView is the rendering side of the wizard. ShowStep makes step the
// only visible step and marks progress item i completed iff completed[i].
// Implementations must locate every node they touch before changing any of
// them.
type StepView interface {
	ShowStep(step int, completed []bool) error
}

// Controller tracks the active step and drives a StepView.
type Controller struct {
	view   StepView
	steps  int
	active int
}

// New creates a controller over steps steps. No step is active until the
// first GoTo.
func New(view StepView, steps int) (*Controller, error) {
	if steps < 1 {
		return nil, fmt.Errorf("wizard needs at least one step, got %d", steps)
	}
	return &Controller{view: view, steps: steps}, nil
}

// GoTo activates step. The active step only changes when the view
// accepted the update.
func (c *Controller) GoTo(step int) error {
	if step < 1 || step > c.steps {
		return fmt.Errorf("%w: %d (have 1..%d)", ErrStepNotFound, step, c.steps)
	}
	if err := c.view.ShowStep(step, progressFor(step, c.steps)); err != nil {
		return fmt.Errorf("show step %d: %w", step, err)
	}
	c.active = step
	return nil
}

// Next moves forward one step. At the last step it returns ErrStepNotFound.
func (c *Controller) Next() error {
	return c.GoTo(c.active + 1)
}

// Prev moves back one step. At the first step it returns ErrStepNotFound.
func (c *Controller) Prev() error {
	return c.GoTo(c.active - 1)
}

// Active returns the 1-based active step, or 0 before the first GoTo.
func (c *Controller) Active() int { return c.active }

// Steps returns the number of steps.
func (c *Controller) Steps() int { return c.steps }

// IsFirst reports whether the first step is active.
func (c *Controller) IsFirst() bool { return c.active == 1 }

// IsLast reports whether the last step is active.
func (c *Controller) IsLast() bool { return c.active == c.steps }

// Progress returns the completed flag of each progress item for the
// active step.
func (c *Controller) Progress() []bool {
	return progressFor(c.active, c.steps)
}

func progressFor(step, steps int) []bool {
	out := make([]bool, steps)
	for i := range out {
		out[i] = i < step
	}
	return out
}
