// Command calcviz runs animated calculus and trigonometry demos in a
// desktop window, or exports them to PNG/GIF for headless use.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/calcviz/calcviz"
	"github.com/calcviz/calcviz/eqcycle"
	"github.com/calcviz/calcviz/host"
	"github.com/calcviz/calcviz/reveal"
	"github.com/calcviz/calcviz/unitcircle"
)

var (
	verbose bool
	outPath string

	rootCmd = &cobra.Command{
		Use:   "calcviz",
		Short: "Animated calculus and trigonometry demonstrations",
		Long: `calcviz renders educational math diagrams: equation derivations that
advance step by step, the geometric picture behind completing the
square, and an interactive unit circle with an angle slider.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				calcviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}
		},
	}

	calcCmd = &cobra.Command{
		Use:   "calc",
		Short: "Equation demos: prompts for a derivation and animates its steps",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}

	squareCmd = &cobra.Command{
		Use:   "square",
		Short: "Geometric completing-the-square animation",
		Args:  cobra.NoArgs,
		RunE:  runSquare,
	}

	circleCmd = &cobra.Command{
		Use:   "circle",
		Short: "Interactive unit circle with an angle slider",
		Args:  cobra.NoArgs,
		RunE:  runCircle,
	}

	squareSide float64
	squareHalf float64
	circleDeg  float64
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "",
		"write a GIF (animated demos) or PNG (unit circle) instead of opening a window")

	squareCmd.Flags().Float64Var(&squareSide, "side", 1.0, "side length of the x² square")
	squareCmd.Flags().Float64Var(&squareHalf, "half", 0.5, "half-coefficient b/2")
	circleCmd.Flags().Float64Var(&circleDeg, "angle", unitcircle.DefaultAngle,
		"initial angle in degrees")

	rootCmd.AddCommand(calcCmd, squareCmd, circleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	cycler, err := selectDemo(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if cycler == nil {
		// invalid choice: message already printed, not an error
		return nil
	}

	fig, err := calcviz.NewFigure(
		calcviz.WithSize(640, 320),
		calcviz.WithTitle(cycler.Title()),
	)
	if err != nil {
		return err
	}

	if outPath != "" {
		scene := eqcycle.NewScene(cycler, 1)
		return calcviz.SaveGIF(outPath, fig, scene, cycler.Len(), eqcycle.DefaultInterval)
	}
	scene := eqcycle.NewScene(cycler, eqcycle.TicksFor(eqcycle.DefaultInterval, host.TPS))
	return host.Run(cycler.Title(), fig, scene)
}

func runSquare(cmd *cobra.Command, args []string) error {
	r, err := reveal.New(squareSide, squareHalf)
	if err != nil {
		return err
	}

	pad := 0.1 * r.TotalSide()
	fig, err := calcviz.NewFigure(
		calcviz.WithSize(600, 600),
		calcviz.WithLimits(-pad, r.TotalSide()+pad, -pad, r.TotalSide()+pad),
		calcviz.WithEqualAspect(),
	)
	if err != nil {
		return err
	}

	if outPath != "" {
		scene := reveal.NewScene(r, 1)
		return calcviz.SaveGIF(outPath, fig, scene, reveal.FrameCount, reveal.DefaultInterval)
	}
	frameTicks := int(reveal.DefaultInterval * host.TPS / time.Second)
	scene := reveal.NewScene(r, frameTicks)
	return host.Run("Completing the Square", fig, scene)
}

func runCircle(cmd *cobra.Command, args []string) error {
	scene := unitcircle.NewScene()
	scene.SetAngle(circleDeg)

	fig, err := calcviz.NewFigure(
		calcviz.WithSize(720, 640),
		calcviz.WithLimits(-1.3, 2.3, -1.3, 1.3),
		calcviz.WithEqualAspect(),
		calcviz.WithTitle("Interactive Unit Circle"),
		calcviz.WithBottomInset(56),
	)
	if err != nil {
		return err
	}

	if outPath != "" {
		return calcviz.SavePNGFrame(outPath, fig, scene)
	}

	slider := host.NewSlider("Angle (°)", 0, 360, scene.Angle())
	slider.OnChange = scene.SetAngle
	return host.Run("Interactive Unit Circle", fig, scene, slider)
}
