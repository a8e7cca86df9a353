package calcviz

// Clamp01 clamps v to the range [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Timeline maps a discrete frame counter onto an interpolation fraction.
// Fraction is 0 for frames at or before Start, ramps linearly over Length
// frames, and stays at 1 afterwards. Two back-to-back timelines implement
// the staged reveal animations: the second starts where the first ends, so
// the phases never overlap.
type Timeline struct {
	// Start is the last frame before the ramp begins.
	Start int
	// Length is the number of frames the ramp spans. Must be positive.
	Length int
}

// Fraction returns the interpolation fraction for the given frame,
// clamped to [0, 1]. A non-positive Length yields a step function at
// Start so a misconfigured timeline cannot divide by zero.
func (tl Timeline) Fraction(frame int) float64 {
	if tl.Length <= 0 {
		if frame > tl.Start {
			return 1
		}
		return 0
	}
	return Clamp01(float64(frame-tl.Start) / float64(tl.Length))
}

// Smooth returns the cubic smoothstep of Fraction, easing in and out.
// The reveal demos use the linear Fraction to match the reference
// timing exactly; Smooth is for callers that prefer eased motion.
func (tl Timeline) Smooth(frame int) float64 {
	x := tl.Fraction(frame)
	return x * x * (3 - 2*x)
}

// End returns the first frame at which Fraction reaches 1.
func (tl Timeline) End() int {
	if tl.Length <= 0 {
		return tl.Start + 1
	}
	return tl.Start + tl.Length
}
