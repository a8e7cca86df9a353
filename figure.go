package calcviz

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Figure is a drawing surface with a data coordinate system on top of a
// gg canvas. Data coordinates follow math convention (y up); limits are
// set at construction and mapped onto the pixel plot area. All stroke
// widths, font sizes and dash lengths are in pixels.
//
// A Figure is redrawn from scratch every frame: Clear repaints the
// background and title, then the scene draws its elements as pure
// functions of its current state. Figures are not safe for concurrent
// use; the host loop owns them.
type Figure struct {
	dc   *gg.Context
	opts figureOptions

	body  *text.FontSource
	bold  *text.FontSource
	faces map[faceKey]text.Face

	// data→pixel transform, derived from opts
	sx, sy float64 // pixels per data unit
	ox, oy float64 // pixel offset of (xmin, ymax), i.e. the top-left data corner
}

type faceKey struct {
	bold bool
	size float64
}

// NewFigure creates a figure with the given options. It returns an error
// if the size or limits are degenerate or the embedded fonts fail to
// parse.
func NewFigure(options ...FigureOption) (*Figure, error) {
	opts := defaultFigureOptions()
	for _, opt := range options {
		opt(&opts)
	}

	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("figure size %dx%d: dimensions must be positive", opts.width, opts.height)
	}
	if opts.xmax <= opts.xmin || opts.ymax <= opts.ymin {
		return nil, fmt.Errorf("figure limits [%g, %g]x[%g, %g]: max must exceed min",
			opts.xmin, opts.xmax, opts.ymin, opts.ymax)
	}

	body, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load body font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}

	f := &Figure{
		dc:    gg.NewContext(opts.width, opts.height),
		opts:  opts,
		body:  body,
		bold:  bold,
		faces: make(map[faceKey]text.Face),
	}
	f.recompute()
	f.Clear()
	return f, nil
}

// recompute derives the data→pixel transform from the current options.
func (f *Figure) recompute() {
	o := f.opts
	areaW := float64(o.width) - 2*o.margin
	areaH := float64(o.height) - 2*o.margin - o.bottomInset

	sx := areaW / (o.xmax - o.xmin)
	sy := areaH / (o.ymax - o.ymin)
	if o.equalAspect {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	f.sx, f.sy = sx, sy

	// center the data range inside the plot area
	f.ox = o.margin + (areaW-sx*(o.xmax-o.xmin))/2
	f.oy = o.margin + (areaH-sy*(o.ymax-o.ymin))/2
}

// Width returns the canvas width in pixels.
func (f *Figure) Width() int { return f.opts.width }

// Height returns the canvas height in pixels.
func (f *Figure) Height() int { return f.opts.height }

// Limits returns the data-coordinate range of the plot area.
func (f *Figure) Limits() (xmin, xmax, ymin, ymax float64) {
	return f.opts.xmin, f.opts.xmax, f.opts.ymin, f.opts.ymax
}

// ToPixel converts a data-space point to canvas pixel coordinates.
func (f *Figure) ToPixel(x, y float64) (px, py float64) {
	px = f.ox + (x-f.opts.xmin)*f.sx
	py = f.oy + (f.opts.ymax-y)*f.sy
	return px, py
}

// ScaleX returns the horizontal pixels-per-data-unit scale. Radii given
// in data units are converted with this scale.
func (f *Figure) ScaleX() float64 { return f.sx }

// InsetRect returns the pixel rectangle reserved by WithBottomInset,
// below the plot area. Widgets draw themselves there via Canvas.
func (f *Figure) InsetRect() (x, y, w, h float64) {
	o := f.opts
	return o.margin, float64(o.height) - o.margin - o.bottomInset,
		float64(o.width) - 2*o.margin, o.bottomInset
}

// Canvas exposes the underlying gg context for pixel-space drawing.
// Widgets and custom overlays use it; data-space drawing should go
// through the Figure methods.
func (f *Figure) Canvas() *gg.Context { return f.dc }

// Clear repaints the background and, if set, the title. Call once per
// frame before drawing scene elements.
func (f *Figure) Clear() {
	f.dc.ClearWithColor(f.opts.background)
	if f.opts.title != "" {
		f.dc.SetFont(f.face(true, f.opts.titleSize))
		f.dc.SetColor(Black.Color())
		// ay=1 anchors the top of the text at y (baseline is y plus
		// the line height in the canvas's anchor convention)
		f.dc.DrawStringAnchored(f.opts.title, float64(f.opts.width)/2, 6, 0.5, 1)
	}
}

func (f *Figure) face(bold bool, size float64) text.Face {
	key := faceKey{bold: bold, size: size}
	if fc, ok := f.faces[key]; ok {
		return fc
	}
	src := f.body
	if bold {
		src = f.bold
	}
	fc := src.Face(size)
	f.faces[key] = fc
	return fc
}

// FillRect fills an axis-aligned rectangle. (x, y) is the lower-left
// corner in data coordinates; w and h extend right and up.
func (f *Figure) FillRect(x, y, w, h float64, col gg.RGBA) {
	px, py := f.ToPixel(x, y+h) // top-left corner in pixel space
	f.dc.SetColor(col.Color())
	f.dc.DrawRectangle(px, py, w*f.sx, h*f.sy)
	if err := f.dc.Fill(); err != nil {
		Logger().Warn("fill rect failed", "err", err)
	}
}

// StrokeRect outlines an axis-aligned rectangle. (x, y) is the
// lower-left corner in data coordinates. Optional dash lengths are in
// pixels.
func (f *Figure) StrokeRect(x, y, w, h float64, col gg.RGBA, width float64, dash ...float64) {
	px, py := f.ToPixel(x, y+h)
	f.stroke(col, width, dash, func() {
		f.dc.DrawRectangle(px, py, w*f.sx, h*f.sy)
	})
}

// StrokeLine draws a line segment between two data-space points.
// Optional dash lengths are in pixels.
func (f *Figure) StrokeLine(x1, y1, x2, y2 float64, col gg.RGBA, width float64, dash ...float64) {
	px1, py1 := f.ToPixel(x1, y1)
	px2, py2 := f.ToPixel(x2, y2)
	f.stroke(col, width, dash, func() {
		f.dc.DrawLine(px1, py1, px2, py2)
	})
}

// StrokeCircle outlines a circle centered at (cx, cy) with radius r in
// data units (horizontal scale).
func (f *Figure) StrokeCircle(cx, cy, r float64, col gg.RGBA, width float64) {
	px, py := f.ToPixel(cx, cy)
	f.stroke(col, width, nil, func() {
		f.dc.DrawCircle(px, py, r*f.sx)
	})
}

// FillCircle fills a circle centered at (cx, cy); r is in data units.
// Used for point markers.
func (f *Figure) FillCircle(cx, cy, r float64, col gg.RGBA) {
	px, py := f.ToPixel(cx, cy)
	f.dc.SetColor(col.Color())
	f.dc.DrawCircle(px, py, r*f.sx)
	if err := f.dc.Fill(); err != nil {
		Logger().Warn("fill circle failed", "err", err)
	}
}

func (f *Figure) stroke(col gg.RGBA, width float64, dash []float64, path func()) {
	f.dc.SetColor(col.Color())
	f.dc.SetLineWidth(width)
	if len(dash) > 0 {
		f.dc.SetDash(dash...)
	}
	path()
	if err := f.dc.Stroke(); err != nil {
		Logger().Warn("stroke failed", "err", err)
	}
	if len(dash) > 0 {
		f.dc.ClearDash()
	}
}

// Text draws a string anchored at a data-space point. ax and ay follow
// the canvas anchor convention: (0.5, 0.5) centers the text on the
// point, ay=1 hangs it below. Size is the font height in pixels.
func (f *Figure) Text(s string, x, y, ax, ay, size float64, col gg.RGBA) {
	px, py := f.ToPixel(x, y)
	f.dc.SetFont(f.face(false, size))
	f.dc.SetColor(col.Color())
	f.dc.DrawStringAnchored(s, px, py, ax, ay)
}

// TextPx draws a string anchored at a pixel-space point, bypassing the
// data transform. Widgets drawing into the bottom inset use this.
func (f *Figure) TextPx(s string, px, py, ax, ay, size float64, col gg.RGBA) {
	f.dc.SetFont(f.face(false, size))
	f.dc.SetColor(col.Color())
	f.dc.DrawStringAnchored(s, px, py, ax, ay)
}

// TextBox draws left-aligned lines of text in a filled box whose
// top-left corner sits at the data-space point (x, y). Used for the
// informational annotation on the unit circle.
func (f *Figure) TextBox(lines []string, x, y, size float64, col, background gg.RGBA) {
	if len(lines) == 0 {
		return
	}
	px, py := f.ToPixel(x, y)
	f.dc.SetFont(f.face(false, size))

	const pad = 6
	lineH := size * 1.4
	boxW := 0.0
	for _, line := range lines {
		w, _ := f.dc.MeasureString(line)
		boxW = math.Max(boxW, w)
	}

	f.dc.SetColor(background.Color())
	f.dc.DrawRectangle(px, py, boxW+2*pad, lineH*float64(len(lines))+2*pad)
	if err := f.dc.Fill(); err != nil {
		Logger().Warn("fill text box failed", "err", err)
	}

	f.dc.SetColor(col.Color())
	for i, line := range lines {
		f.dc.DrawStringAnchored(line, px+pad, py+pad+lineH*float64(i), 0, 1)
	}
}

// Image returns the rendered canvas.
func (f *Figure) Image() image.Image { return f.dc.Image() }

// RGBA returns the rendered canvas as an *image.RGBA, converting if the
// backend ever hands back another format. The host blits this to the
// window every frame.
func (f *Figure) RGBA() *image.RGBA {
	img := f.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// SavePNG writes the rendered canvas to a PNG file.
func (f *Figure) SavePNG(path string) error { return f.dc.SavePNG(path) }

// EncodePNG writes the rendered canvas as PNG to the given writer.
func (f *Figure) EncodePNG(w io.Writer) error { return f.dc.EncodePNG(w) }
