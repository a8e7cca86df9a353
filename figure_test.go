package calcviz

import (
	"image"
	"math"
	"testing"
)

func newTestFigure(t *testing.T, options ...FigureOption) *Figure {
	t.Helper()
	fig, err := NewFigure(options...)
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	return fig
}

func TestNewFigureValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []FigureOption
	}{
		{"zero width", []FigureOption{WithSize(0, 100)}},
		{"negative height", []FigureOption{WithSize(100, -1)}},
		{"inverted x limits", []FigureOption{WithLimits(1, 0, 0, 1)}},
		{"empty y range", []FigureOption{WithLimits(0, 1, 2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFigure(tt.opts...); err == nil {
				t.Error("NewFigure succeeded, want error")
			}
		})
	}
}

func TestToPixelCorners(t *testing.T) {
	fig := newTestFigure(t,
		WithSize(200, 100),
		WithLimits(0, 2, 0, 1),
		WithMargin(10),
	)

	// (xmin, ymax) maps to the top-left of the plot area, (xmax, ymin)
	// to the bottom-right.
	px, py := fig.ToPixel(0, 1)
	if math.Abs(px-10) > 1e-9 || math.Abs(py-10) > 1e-9 {
		t.Errorf("ToPixel(0, 1) = (%v, %v), want (10, 10)", px, py)
	}
	px, py = fig.ToPixel(2, 0)
	if math.Abs(px-190) > 1e-9 || math.Abs(py-90) > 1e-9 {
		t.Errorf("ToPixel(2, 0) = (%v, %v), want (190, 90)", px, py)
	}

	// y increases upward: larger y means smaller pixel row
	_, pyLow := fig.ToPixel(1, 0.2)
	_, pyHigh := fig.ToPixel(1, 0.8)
	if pyHigh >= pyLow {
		t.Errorf("y-up violated: y=0.8 at row %v, y=0.2 at row %v", pyHigh, pyLow)
	}
}

func TestEqualAspect(t *testing.T) {
	fig := newTestFigure(t,
		WithSize(400, 200),
		WithLimits(0, 1, 0, 1),
		WithMargin(0),
		WithEqualAspect(),
	)
	if fig.sx != fig.sy {
		t.Fatalf("scales differ: sx=%v sy=%v", fig.sx, fig.sy)
	}
	// the tighter axis (height) wins
	if fig.sx != 200 {
		t.Errorf("scale = %v, want 200", fig.sx)
	}
	// data range is centered horizontally
	px, _ := fig.ToPixel(0.5, 0.5)
	if math.Abs(px-200) > 1e-9 {
		t.Errorf("center x pixel = %v, want 200", px)
	}
}

func TestBottomInset(t *testing.T) {
	fig := newTestFigure(t,
		WithSize(100, 100),
		WithMargin(10),
		WithBottomInset(30),
	)
	x, y, w, h := fig.InsetRect()
	if x != 10 || y != 60 || w != 80 || h != 30 {
		t.Errorf("InsetRect = (%v, %v, %v, %v), want (10, 60, 80, 30)", x, y, w, h)
	}
	// the plot area stops above the inset
	_, py := fig.ToPixel(0.5, 0)
	if py > 60 {
		t.Errorf("ymin row %v extends into the inset", py)
	}
}

func TestClearBackground(t *testing.T) {
	fig := newTestFigure(t, WithSize(20, 20), WithBackground(LightBlue))
	fig.Clear()

	rgba := fig.RGBA()
	r, g, b, _ := rgba.At(10, 10).RGBA()
	want := [3]uint32{0xAD, 0xD8, 0xE6}
	got := [3]uint32{r >> 8, g >> 8, b >> 8}
	for i := range want {
		if d := int64(got[i]) - int64(want[i]); d > 1 || d < -1 {
			t.Fatalf("background pixel = %v, want ~%v", got, want)
		}
	}
}

func TestFillRectPixels(t *testing.T) {
	fig := newTestFigure(t,
		WithSize(100, 100),
		WithLimits(0, 10, 0, 10),
		WithMargin(0),
	)
	fig.Clear()
	fig.FillRect(2, 2, 6, 6, Black)

	rgba := fig.RGBA()
	// center of the rectangle is black
	r, g, b, _ := rgba.At(50, 50).RGBA()
	if r>>8 > 10 || g>>8 > 10 || b>>8 > 10 {
		t.Errorf("pixel inside rect = (%d, %d, %d), want black", r>>8, g>>8, b>>8)
	}
	// corner of the canvas stays white
	r, g, b, _ = rgba.At(2, 2).RGBA()
	if r>>8 < 245 || g>>8 < 245 || b>>8 < 245 {
		t.Errorf("pixel outside rect = (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRGBAAlwaysRGBA(t *testing.T) {
	fig := newTestFigure(t, WithSize(8, 8))
	var img *image.RGBA = fig.RGBA()
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}
}
