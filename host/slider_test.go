package host

import (
	"math"
	"testing"

	"github.com/calcviz/calcviz"
)

func layoutTestSlider(t *testing.T) *Slider {
	t.Helper()
	// 400-wide figure, margin 20, inset 40:
	// inset rect (20, 240, 360, 40), track x in [100, 320], y 260
	fig, err := calcviz.NewFigure(
		calcviz.WithSize(400, 300),
		calcviz.WithMargin(20),
		calcviz.WithBottomInset(40),
	)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	s := NewSlider("Angle (°)", 0, 360, 45)
	s.Layout(fig)
	return s
}

func TestSliderInitialClamped(t *testing.T) {
	if got := NewSlider("a", 0, 360, 500).Value(); got != 360 {
		t.Errorf("initial value = %v, want 360", got)
	}
	if got := NewSlider("a", 0, 360, -10).Value(); got != 0 {
		t.Errorf("initial value = %v, want 0", got)
	}
}

func TestValueAtMapsTrack(t *testing.T) {
	s := layoutTestSlider(t)

	tests := []struct {
		px   float64
		want float64
	}{
		{100, 0},   // track start
		{320, 360}, // track end
		{210, 180}, // midpoint
		{0, 0},     // left of track clamps
		{999, 360}, // right of track clamps
	}
	for _, tt := range tests {
		if got := s.ValueAt(tt.px); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestSliderDrag(t *testing.T) {
	s := layoutTestSlider(t)

	var notified []float64
	s.OnChange = func(v float64) { notified = append(notified, v) }

	// press on the track midpoint
	s.Handle(Pointer{X: 210, Y: 260, Pressed: true}, Keys{})
	if math.Abs(s.Value()-180) > 1e-9 {
		t.Fatalf("value after press = %v, want 180", s.Value())
	}

	// drag follows the pointer even when it leaves the track band
	s.Handle(Pointer{X: 320, Y: 50, Pressed: true}, Keys{})
	if s.Value() != 360 {
		t.Fatalf("value after drag = %v, want 360", s.Value())
	}

	// release ends the drag; a press far from the track does nothing
	s.Handle(Pointer{X: 320, Y: 50, Pressed: false}, Keys{})
	s.Handle(Pointer{X: 210, Y: 50, Pressed: true}, Keys{})
	if s.Value() != 360 {
		t.Fatalf("value after off-track press = %v, want 360", s.Value())
	}

	if len(notified) != 2 {
		t.Errorf("OnChange fired %d times, want 2: %v", len(notified), notified)
	}
}

func TestSliderKeyNudge(t *testing.T) {
	s := layoutTestSlider(t)
	s.SetValue(180)

	s.Handle(Pointer{}, Keys{Right: true})
	if math.Abs(s.Value()-183.6) > 1e-9 {
		t.Errorf("value after right nudge = %v, want 183.6", s.Value())
	}
	s.Handle(Pointer{}, Keys{Left: true})
	if math.Abs(s.Value()-180) > 1e-9 {
		t.Errorf("value after left nudge = %v, want 180", s.Value())
	}

	// nudging never leaves the range
	s.SetValue(360)
	s.Handle(Pointer{}, Keys{Right: true})
	if s.Value() != 360 {
		t.Errorf("value = %v, want 360", s.Value())
	}
}

func TestSliderNoChangeNoNotify(t *testing.T) {
	s := layoutTestSlider(t)
	s.SetValue(360)

	fired := 0
	s.OnChange = func(float64) { fired++ }
	s.SetValue(360)
	if fired != 0 {
		t.Errorf("OnChange fired %d times for an unchanged value", fired)
	}
}
