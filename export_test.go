package calcviz

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// countScene fills the figure with a color that depends on how often it
// was advanced, so exported frames are distinguishable.
type countScene struct {
	n int
}

func (s *countScene) Update() error { s.n++; return nil }

func (s *countScene) Render(fig *Figure) error {
	fig.FillRect(0, 0, 1, 1, WithAlpha(Navy, float64(s.n%2)))
	return nil
}

func TestSaveGIF(t *testing.T) {
	fig, err := NewFigure(WithSize(32, 32), WithMargin(0))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.gif")

	if err := SaveGIF(path, fig, &countScene{}, 4, 50*time.Millisecond); err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}

	fp, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fp.Close()
	g, err := gif.DecodeAll(fp)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 4 {
		t.Errorf("frame count = %d, want 4", len(g.Image))
	}
	if g.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0 (loop forever)", g.LoopCount)
	}
	for i, d := range g.Delay {
		if d != 5 {
			t.Errorf("frame %d delay = %d, want 5 (50ms)", i, d)
		}
	}
}

func TestSaveGIFRejectsNonPositiveFrames(t *testing.T) {
	fig, err := NewFigure(WithSize(8, 8))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveGIF(path, fig, &countScene{}, 0, time.Second); err == nil {
		t.Error("SaveGIF with 0 frames succeeded, want error")
	}
}

func TestSavePNGFrame(t *testing.T) {
	fig, err := NewFigure(WithSize(16, 16))
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := SavePNGFrame(path, fig, &countScene{}); err != nil {
		t.Fatalf("SavePNGFrame: %v", err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", img.Bounds())
	}
}
