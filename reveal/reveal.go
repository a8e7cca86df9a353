// Package reveal animates the geometric picture behind completing the
// square: an L-shaped region made of an x² square and two x·(b/2)
// rectangles is completed into a perfect square by fading in the missing
// (b/2)² piece, then the (x + b/2)² outline.
package reveal

import (
	"fmt"
	"time"

	"github.com/calcviz/calcviz"
)

// Animation schedule, in frames. Phase 1 fades in the missing piece,
// phase 2 the completed-square outline; the phases are back to back and
// never overlap. After the last frame the animation starts over.
const (
	PhaseFrames = 50
	FrameCount  = 2*PhaseFrames + 1
)

// DefaultInterval is the wall-clock time per animation frame.
const DefaultInterval = 50 * time.Millisecond

var (
	phase1 = calcviz.Timeline{Start: 0, Length: PhaseFrames}
	phase2 = calcviz.Timeline{Start: PhaseFrames, Length: PhaseFrames}
)

// MissingAlpha returns the opacity of the missing (b/2)² piece and its
// label at the given frame: a linear ramp over phase 1, then fully
// opaque.
func MissingAlpha(frame int) float64 { return phase1.Fraction(frame) }

// OutlineAlpha returns the opacity of the completed-square outline and
// its label: zero through phase 1, then a linear ramp over phase 2.
func OutlineAlpha(frame int) float64 { return phase2.Fraction(frame) }

// Reveal holds the two lengths that determine the whole composition:
// the side of the x² square and the half-coefficient b/2.
type Reveal struct {
	side float64
	half float64
}

// New creates the composition. Both lengths must be positive.
func New(side, half float64) (*Reveal, error) {
	if side <= 0 || half <= 0 {
		return nil, fmt.Errorf("reveal: side %g and half %g must be positive", side, half)
	}
	return &Reveal{side: side, half: half}, nil
}

// Side returns the x² square side length.
func (r *Reveal) Side() float64 { return r.side }

// Half returns the half-coefficient b/2.
func (r *Reveal) Half() float64 { return r.half }

// TotalSide returns the side of the completed square, x + b/2.
func (r *Reveal) TotalSide() float64 { return r.side + r.half }

// Render draws the composition at the given animation frame. The static
// pieces are always fully opaque; the missing piece and the outline get
// their frame-dependent alpha.
func (r *Reveal) Render(fig *calcviz.Figure, frame int) error {
	s, h := r.side, r.half
	missing := MissingAlpha(frame)
	outline := OutlineAlpha(frame)
	calcviz.Logger().Debug("reveal frame", "frame", frame, "missing", missing, "outline", outline)

	// x² square with its two x·(b/2) rectangles, forming the L-shape
	fig.FillRect(0, 0, s, s, calcviz.LightBlue)
	fig.StrokeRect(0, 0, s, s, calcviz.Black, 2)
	fig.Text("x²", s/2, s/2, 0.5, 0.5, 18, calcviz.Black)

	fig.FillRect(s, 0, h, s, calcviz.LightGreen)
	fig.StrokeRect(s, 0, h, s, calcviz.Black, 2)
	fig.Text("x·(b/2)", s+h/2, s/2, 0.5, 0.5, 14, calcviz.Black)

	fig.FillRect(0, s, s, h, calcviz.LightGreen)
	fig.StrokeRect(0, s, s, h, calcviz.Black, 2)
	fig.Text("x·(b/2)", s/2, s+h/2, 0.5, 0.5, 14, calcviz.Black)

	// the missing (b/2)² piece fades in during phase 1
	fig.FillRect(s, s, h, h, calcviz.WithAlpha(calcviz.Pink, missing))
	fig.StrokeRect(s, s, h, h, calcviz.WithAlpha(calcviz.Black, missing), 2)
	fig.Text("(b/2)²", s+h/2, s+h/2, 0.5, 0.5, 14, calcviz.WithAlpha(calcviz.Black, missing))

	// the completed square's dashed outline fades in during phase 2
	total := r.TotalSide()
	fig.StrokeRect(0, 0, total, total, calcviz.WithAlpha(calcviz.Red, outline), 2, 8, 5)
	fig.Text("(x + b/2)²", total/2, total/2, 0.5, 0.5, 20, calcviz.WithAlpha(calcviz.Red, outline))

	return nil
}

// Scene adapts a Reveal to the host animation loop, advancing one
// animation frame every frameTicks update calls and wrapping after the
// final frame.
type Scene struct {
	reveal     *Reveal
	frameTicks int
	tick       int
}

// NewScene wraps the composition in a scene. frameTicks values below 1
// are treated as 1 so export runs one animation frame per rendered
// frame.
func NewScene(r *Reveal, frameTicks int) *Scene {
	if frameTicks < 1 {
		frameTicks = 1
	}
	return &Scene{reveal: r, frameTicks: frameTicks}
}

// Frame returns the current animation frame in [0, FrameCount).
func (s *Scene) Frame() int {
	return (s.tick / s.frameTicks) % FrameCount
}

// Update advances the scene by one host tick.
func (s *Scene) Update() error {
	s.tick++
	return nil
}

// Render draws the composition at the current frame.
func (s *Scene) Render(fig *calcviz.Figure) error {
	return s.reveal.Render(fig, s.Frame())
}

var _ calcviz.Scene = (*Scene)(nil)
