package calcviz

import "github.com/gogpu/gg"

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig, err := calcviz.NewFigure(
//	    calcviz.WithSize(600, 600),
//	    calcviz.WithLimits(-0.1, 1.6, -0.1, 1.6),
//	    calcviz.WithEqualAspect(),
//	    calcviz.WithTitle("Completing the Square"),
//	)
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	width, height          int
	xmin, xmax, ymin, ymax float64
	equalAspect            bool
	background             gg.RGBA
	title                  string
	titleSize              float64
	margin                 float64
	bottomInset            float64
}

// defaultFigureOptions returns the default figure configuration:
// a 640×480 white canvas spanning the unit square with a small margin.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:      640,
		height:     480,
		xmin:       0,
		xmax:       1,
		ymin:       0,
		ymax:       1,
		background: gg.RGB(1, 1, 1),
		titleSize:  20,
		margin:     24,
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) FigureOption {
	return func(o *figureOptions) {
		o.width = width
		o.height = height
	}
}

// WithLimits sets the data-coordinate range mapped onto the plot area.
func WithLimits(xmin, xmax, ymin, ymax float64) FigureOption {
	return func(o *figureOptions) {
		o.xmin, o.xmax = xmin, xmax
		o.ymin, o.ymax = ymin, ymax
	}
}

// WithEqualAspect forces one data unit to span the same number of pixels
// on both axes, shrinking the tighter axis and centering the data range.
// Geometric diagrams (squares, circles) need this to not look sheared.
func WithEqualAspect() FigureOption {
	return func(o *figureOptions) {
		o.equalAspect = true
	}
}

// WithBackground sets the canvas background color. Default is white.
func WithBackground(col gg.RGBA) FigureOption {
	return func(o *figureOptions) {
		o.background = col
	}
}

// WithTitle sets a title drawn centered at the top of the canvas on
// every Clear.
func WithTitle(title string) FigureOption {
	return func(o *figureOptions) {
		o.title = title
	}
}

// WithTitleSize sets the title font size in pixels.
func WithTitleSize(size float64) FigureOption {
	return func(o *figureOptions) {
		o.titleSize = size
	}
}

// WithMargin sets the pixel margin between the canvas edge and the plot
// area.
func WithMargin(px float64) FigureOption {
	return func(o *figureOptions) {
		o.margin = px
	}
}

// WithBottomInset reserves extra pixels below the plot area, e.g. for an
// input widget such as the angle slider.
func WithBottomInset(px float64) FigureOption {
	return func(o *figureOptions) {
		o.bottomInset = px
	}
}
