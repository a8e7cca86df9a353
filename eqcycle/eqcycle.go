// Package eqcycle animates an algebraic derivation by cycling through
// its steps, one equation on screen at a time.
package eqcycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/calcviz/calcviz"
)

// ErrNoSteps is returned when a cycler is constructed with an empty step
// list. Rejecting this up front keeps the modulo in StepAt total.
var ErrNoSteps = errors.New("eqcycle: step list is empty")

// DefaultInterval is the wall-clock time each step stays on screen.
const DefaultInterval = 3 * time.Second

// Cycler holds an ordered, immutable sequence of equation steps.
// Frame i of the animation shows steps[i mod len(steps)].
type Cycler struct {
	title string
	steps []string
}

// New creates a cycler for the given derivation. The step list must be
// non-empty.
func New(title string, steps []string) (*Cycler, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrNoSteps)
	}
	c := &Cycler{title: title, steps: make([]string, len(steps))}
	copy(c.steps, steps)
	return c, nil
}

// Title returns the display title of the derivation.
func (c *Cycler) Title() string { return c.title }

// Len returns the number of steps.
func (c *Cycler) Len() int { return len(c.steps) }

// StepAt returns the step shown at the given frame index, cycling
// modulo the step count. Negative indexes wrap the same way.
func (c *Cycler) StepAt(frame int) string {
	n := len(c.steps)
	i := frame % n
	if i < 0 {
		i += n
	}
	return c.steps[i]
}

// CompletingSquare returns the completing-the-square derivation:
// x² + bx rewritten as (x + b/2)² − (b/2)².
func CompletingSquare() *Cycler {
	c, _ := New("Completing the Square", []string{
		"x² + bx",
		"x² + bx + (b/2)² − (b/2)²",
		"(x + b/2)² − (b/2)²",
	})
	return c
}

// IntegrationPattern returns the integration-by-substitution derivation
// for ∫ 2x/(x²+1) dx.
func IntegrationPattern() *Cycler {
	c, _ := New("Integration by Substitution", []string{
		"∫ 2x/(x²+1) dx",
		"Let u = x²+1, so du = 2x dx",
		"= ∫ 1/u du",
		"= ln|u| + C",
		"= ln|x²+1| + C",
	})
	return c
}

// Scene adapts a Cycler to the host animation loop, advancing one step
// every stepTicks update calls.
type Scene struct {
	cycler    *Cycler
	stepTicks int
	tick      int
}

// NewScene wraps the cycler in a scene. stepTicks is the number of host
// ticks per displayed step; values below 1 are treated as 1, so a scene
// built for export advances one step per frame.
func NewScene(c *Cycler, stepTicks int) *Scene {
	if stepTicks < 1 {
		stepTicks = 1
	}
	return &Scene{cycler: c, stepTicks: stepTicks}
}

// TicksFor converts a per-step display interval to host ticks at the
// given tick rate.
func TicksFor(interval time.Duration, tps int) int {
	ticks := int(interval * time.Duration(tps) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Frame returns the current step index (before modulo).
func (s *Scene) Frame() int { return s.tick / s.stepTicks }

// Update advances the scene by one host tick.
func (s *Scene) Update() error {
	s.tick++
	return nil
}

// Render draws the current step centered on the figure.
func (s *Scene) Render(fig *calcviz.Figure) error {
	frame := s.Frame()
	step := s.cycler.StepAt(frame)
	calcviz.Logger().Debug("equation step", "frame", frame, "step", step)

	xmin, xmax, ymin, ymax := fig.Limits()
	fig.Text(step, (xmin+xmax)/2, (ymin+ymax)/2, 0.5, 0.5, 26, calcviz.Black)
	return nil
}

var _ calcviz.Scene = (*Scene)(nil)
