// Package unitcircle draws an interactive unit circle: a radius at an
// adjustable angle with its cosine and sine projections and their
// values. The angle is owned by an external input widget; everything on
// screen is recomputed from it on each change.
package unitcircle

import (
	"fmt"
	"math"

	"github.com/calcviz/calcviz"
)

// DefaultAngle is the initial angle in degrees.
const DefaultAngle = 45

// State is the single scalar driving the whole diagram. All line
// endpoints and label strings are pure functions of it.
type State struct {
	// AngleDeg is the angle in degrees. Any value is accepted; it is
	// only semantically meaningful modulo 360.
	AngleDeg float64
}

// Point returns the point on the unit circle at the current angle.
func (s State) Point() (x, y float64) {
	rad := s.AngleDeg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// CosLabel returns the cosine annotation, angle to one decimal place
// and value to two.
func (s State) CosLabel() string {
	x, _ := s.Point()
	return fmt.Sprintf("cos(%.1f°) = %.2f", s.AngleDeg, x)
}

// SinLabel returns the sine annotation.
func (s State) SinLabel() string {
	_, y := s.Point()
	return fmt.Sprintf("sin(%.1f°) = %.2f", s.AngleDeg, y)
}

// InfoLines returns the educational annotation box contents.
func (s State) InfoLines() []string {
	x, y := s.Point()
	return []string{
		"Unit Circle Basics:",
		"x = cos(θ)   y = sin(θ)",
		fmt.Sprintf("For θ = %.1f°:", s.AngleDeg),
		fmt.Sprintf("cos ≈ %.2f, sin ≈ %.2f", x, y),
	}
}

// Scene renders the unit circle diagram for its current angle. It keeps
// no other state: setting the same angle twice renders the same frame.
type Scene struct {
	state State
}

// NewScene creates the scene at the default 45° angle.
func NewScene() *Scene {
	return &Scene{state: State{AngleDeg: DefaultAngle}}
}

// SetAngle is the change notification from the input widget. It fully
// replaces the scene's state.
func (sc *Scene) SetAngle(deg float64) {
	sc.state = State{AngleDeg: deg}
	calcviz.Logger().Debug("angle changed", "deg", deg)
}

// Angle returns the current angle in degrees.
func (sc *Scene) Angle() float64 { return sc.state.AngleDeg }

// Update is a no-op: the scene has no internal timer and changes only
// through SetAngle.
func (sc *Scene) Update() error { return nil }

// Render redraws the whole diagram from the current angle.
func (sc *Scene) Render(fig *calcviz.Figure) error {
	x, y := sc.state.Point()
	xmin, xmax, ymin, ymax := fig.Limits()

	// axes
	fig.StrokeLine(xmin, 0, xmax, 0, calcviz.Black, 0.5)
	fig.StrokeLine(0, ymin, 0, ymax, calcviz.Black, 0.5)

	// the fixed unit circle
	fig.StrokeCircle(0, 0, 1, calcviz.Navy, 2)

	// radius to the current point
	fig.StrokeLine(0, 0, x, y, calcviz.Orange, 2, 6, 4)

	// cosine and sine projections
	fig.StrokeLine(x, 0, x, y, calcviz.Green, 1.5, 2, 3)
	fig.StrokeLine(0, y, x, y, calcviz.Green, 1.5, 2, 3)
	fig.FillCircle(x, y, 0.02, calcviz.Orange)

	// value annotations
	fig.Text(sc.state.CosLabel(), x/2, -0.1, 0.5, 0.5, 13, calcviz.Purple)
	fig.Text(sc.state.SinLabel(), -0.5, y/2, 0.5, 0.5, 13, calcviz.Purple)
	fig.TextBox(sc.state.InfoLines(), 1.1, 0.5, 12, calcviz.Black, calcviz.WithAlpha(calcviz.Cream, 0.85))

	return nil
}

var _ calcviz.Scene = (*Scene)(nil)
