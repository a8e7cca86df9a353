// Package host runs calcviz scenes in a desktop window with a
// fixed-rate animation loop, and provides the input widgets that drive
// interactive scenes.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/calcviz/calcviz"
)

// TPS is the fixed tick rate of the host loop. Scenes convert
// wall-clock intervals to ticks with it.
const TPS = 60

// Pointer is the mouse state delivered to widgets once per tick.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Keys is the keyboard state relevant to widgets.
type Keys struct {
	Left, Right bool
}

// Widget is an input element drawn over the figure, such as the angle
// slider. Widgets live in pixel space.
type Widget interface {
	// Layout positions the widget for the given figure. Called once
	// before the loop starts.
	Layout(fig *calcviz.Figure)
	// Handle processes one tick of input.
	Handle(p Pointer, k Keys)
	// Draw renders the widget onto the figure after the scene.
	Draw(fig *calcviz.Figure)
}

// Run opens a window displaying the figure and drives the scene until
// the window is closed. Input is polled once per tick and forwarded to
// the widgets before the scene updates. Run blocks; closing the window
// ends the loop with a nil error.
func Run(title string, fig *calcviz.Figure, scene calcviz.Scene, widgets ...Widget) error {
	for _, w := range widgets {
		w.Layout(fig)
	}

	calcviz.Logger().Info("window opened", "title", title,
		"width", fig.Width(), "height", fig.Height())

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fig.Width(), fig.Height())
	ebiten.SetTPS(TPS)
	g := &game{fig: fig, scene: scene, widgets: widgets}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("host loop: %w", err)
	}
	return nil
}

// game adapts a scene and its widgets to the ebiten loop. Rendering
// happens on the figure's canvas; Draw blits the finished frame into
// the window.
type game struct {
	fig     *calcviz.Figure
	scene   calcviz.Scene
	widgets []Widget
	buf     *ebiten.Image
	drawErr error
}

func (g *game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}

	mx, my := ebiten.CursorPosition()
	p := Pointer{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	k := Keys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	for _, w := range g.widgets {
		w.Handle(p, k)
	}

	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.fig.Clear()
	if err := g.scene.Render(g.fig); err != nil {
		// surfaced from the next Update; Draw cannot return errors
		g.drawErr = err
		return
	}
	for _, w := range g.widgets {
		w.Draw(g.fig)
	}

	if g.buf == nil {
		g.buf = ebiten.NewImage(g.fig.Width(), g.fig.Height())
	}
	g.buf.WritePixels(g.fig.RGBA().Pix)
	screen.DrawImage(g.buf, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fig.Width(), g.fig.Height()
}
