package calcviz

import "github.com/gogpu/gg"

// Shared palette of the demos, the classic named web colors the
// diagrams were designed with.
var (
	White      = gg.RGB(1, 1, 1)
	Black      = gg.RGB(0, 0, 0)
	LightBlue  = gg.Hex("#ADD8E6") // base x² square
	LightGreen = gg.Hex("#90EE90") // x·(b/2) rectangles
	Pink       = gg.Hex("#FFB6C1") // missing (b/2)² piece
	Red        = gg.Hex("#FF0000") // completed-square outline
	Navy       = gg.Hex("#000080") // unit circle
	Orange     = gg.Hex("#FFA500") // radius line
	Green      = gg.Hex("#008000") // projection lines
	Purple     = gg.Hex("#800080") // value labels
	Cream      = gg.Hex("#FFFFE0") // info box background
	Gray       = gg.RGB(0.5, 0.5, 0.5)
)

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
// The demos animate element opacity by recoloring on every frame rather
// than mutating retained shapes.
func WithAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = Clamp01(a)
	return c
}

// LerpColor linearly interpolates between two colors, t clamped to [0, 1].
func LerpColor(a, b gg.RGBA, t float64) gg.RGBA {
	t = Clamp01(t)
	return gg.RGBA{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}
