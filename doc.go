// Package calcviz renders animated and interactive calculus diagrams.
//
// # Overview
//
// calcviz is a small toolkit for educational math visualizations built on
// the gogpu/gg 2D canvas. The root package provides a Figure type that maps
// data coordinates (math convention, y up) onto a gg drawing context, plus
// timeline helpers for frame-driven opacity animation and the shared color
// palette of the demos.
//
// Three demo packages sit on top of it:
//
//   - eqcycle: cycles through the textual steps of an algebraic derivation
//     (completing the square, integration by substitution)
//   - reveal: geometric completing-the-square animation that fades in the
//     missing (b/2)² piece and the completed-square outline
//   - unitcircle: interactive unit circle driven by an angle slider, showing
//     the radius, the cosine/sine projections and their values
//
// # Quick Start
//
//	fig, err := calcviz.NewFigure(
//	    calcviz.WithSize(512, 512),
//	    calcviz.WithLimits(-1.2, 1.2, -1.2, 1.2),
//	    calcviz.WithEqualAspect(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fig.Clear()
//	fig.StrokeCircle(0, 0, 1, calcviz.Navy, 2)
//	fig.SavePNG("circle.png")
//
// The host package runs a Scene in a desktop window with a fixed-rate
// animation loop; export helpers in this package write the same scenes to
// PNG or animated GIF for headless use.
//
// # Coordinate System
//
// Figures use math convention: x increases right, y increases up, limits
// set by the caller. Conversion to the canvas's pixel space (y down)
// happens inside Figure; stroke widths, font sizes and dash lengths are
// always in pixels.
package calcviz
