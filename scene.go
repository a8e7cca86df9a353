package calcviz

// Scene is one demo: per-tick state advance plus a full redraw of its
// elements onto a figure. Render must be a pure function of the scene's
// current state so that a frame can be reproduced at any time, which is
// what makes both the windowed host and the headless exporters work off
// the same implementation.
type Scene interface {
	// Update advances the scene by one host tick.
	Update() error
	// Render redraws the scene onto the figure. The figure has already
	// been cleared for this frame.
	Render(fig *Figure) error
}
