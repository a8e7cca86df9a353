package calcviz

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"time"
)

// SavePNGFrame renders a single frame of the scene and writes it to a
// PNG file.
func SavePNGFrame(path string, fig *Figure, scene Scene) error {
	fig.Clear()
	if err := scene.Render(fig); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := fig.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	Logger().Info("export written", "path", path)
	return nil
}

// SaveGIF renders the scene frame by frame into an animated, looping
// GIF. The scene is advanced once between frames, so callers that want
// one animation frame per GIF frame should construct the scene with a
// one-tick interval. delay is the per-frame display time, rounded to
// GIF's 10 ms resolution.
func SaveGIF(path string, fig *Figure, scene Scene, frames int, delay time.Duration) error {
	if frames <= 0 {
		return fmt.Errorf("save gif: frame count %d must be positive", frames)
	}

	out := &gif.GIF{LoopCount: 0}
	delayCs := int(delay / (10 * time.Millisecond))
	if delayCs < 1 {
		delayCs = 1
	}

	for i := 0; i < frames; i++ {
		fig.Clear()
		if err := scene.Render(fig); err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		out.Image = append(out.Image, palettize(fig.RGBA()))
		out.Delay = append(out.Delay, delayCs)

		if err := scene.Update(); err != nil {
			return fmt.Errorf("advance frame %d: %w", i, err)
		}
	}

	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save gif: %w", err)
	}
	if err := gif.EncodeAll(fp, out); err != nil {
		fp.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("save gif: %w", err)
	}
	Logger().Info("export written", "path", path, "frames", frames)
	return nil
}

// palettize quantizes an RGBA frame to the Plan9 palette for GIF output.
func palettize(src *image.RGBA) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, src.Bounds().Min)
	return dst
}
