package host

import (
	"fmt"

	"github.com/calcviz/calcviz"
)

// Slider is a horizontal input widget mapping a pixel position on its
// track to a value in [Min, Max]. Dragging with the mouse or nudging
// with the arrow keys changes the value and fires OnChange.
type Slider struct {
	// Label is drawn to the left of the track.
	Label string
	// Min and Max bound the value range.
	Min, Max float64
	// Step is the per-tick change for arrow-key nudging. Defaults to
	// 1/100 of the range.
	Step float64
	// OnChange is called with the new value after every change.
	OnChange func(value float64)

	value    float64
	dragging bool

	// track geometry in pixels, set by Layout
	trackX, trackY, trackW float64
	placed                 bool
}

// NewSlider creates a slider over [min, max] starting at initial,
// clamped into range.
func NewSlider(label string, min, max, initial float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  (max - min) / 100,
	}
	s.value = s.clamp(initial)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue clamps v into [Min, Max], stores it, and fires OnChange if
// the value actually changed.
func (s *Slider) SetValue(v float64) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Layout places the track inside the figure's bottom inset, leaving
// room for the label on the left and the value readout on the right.
func (s *Slider) Layout(fig *calcviz.Figure) {
	x, y, w, h := fig.InsetRect()
	const labelRoom = 80
	const valueRoom = 60
	s.trackX = x + labelRoom
	s.trackW = w - labelRoom - valueRoom
	s.trackY = y + h/2
	s.placed = true
}

// ValueAt maps a pixel x-coordinate on the track to a value, clamped to
// the range.
func (s *Slider) ValueAt(px float64) float64 {
	if s.trackW <= 0 {
		return s.Min
	}
	t := calcviz.Clamp01((px - s.trackX) / s.trackW)
	return s.Min + (s.Max-s.Min)*t
}

// handlePos returns the pixel x-coordinate of the handle.
func (s *Slider) handlePos() float64 {
	if s.Max == s.Min {
		return s.trackX
	}
	t := (s.value - s.Min) / (s.Max - s.Min)
	return s.trackX + t*s.trackW
}

// Handle processes one tick of input. A press on the track starts a
// drag; the drag follows the pointer until release, even outside the
// track. Arrow keys nudge by Step per tick.
func (s *Slider) Handle(p Pointer, k Keys) {
	if !s.placed {
		return
	}

	const grab = 14 // vertical grab distance around the track
	switch {
	case !p.Pressed:
		s.dragging = false
	case s.dragging:
		s.SetValue(s.ValueAt(p.X))
	case p.X >= s.trackX-grab && p.X <= s.trackX+s.trackW+grab &&
		p.Y >= s.trackY-grab && p.Y <= s.trackY+grab:
		s.dragging = true
		s.SetValue(s.ValueAt(p.X))
	}

	if k.Left {
		s.SetValue(s.value - s.Step)
	}
	if k.Right {
		s.SetValue(s.value + s.Step)
	}
}

// Draw renders the track, handle, label and value readout into the
// figure's inset area.
func (s *Slider) Draw(fig *calcviz.Figure) {
	if !s.placed {
		s.Layout(fig)
	}
	dc := fig.Canvas()

	dc.SetColor(calcviz.Gray.Color())
	dc.SetLineWidth(3)
	dc.DrawLine(s.trackX, s.trackY, s.trackX+s.trackW, s.trackY)
	if err := dc.Stroke(); err != nil {
		calcviz.Logger().Warn("slider track stroke failed", "err", err)
	}

	dc.SetColor(calcviz.Orange.Color())
	dc.DrawCircle(s.handlePos(), s.trackY, 7)
	if err := dc.Fill(); err != nil {
		calcviz.Logger().Warn("slider handle fill failed", "err", err)
	}

	fig.TextPx(s.Label, s.trackX-10, s.trackY, 1, 0.5, 13, calcviz.Black)
	readout := fmt.Sprintf("%.1f", s.value)
	fig.TextPx(readout, s.trackX+s.trackW+10, s.trackY, 0, 0.5, 13, calcviz.Black)
}
