package render

import "math"

// NiceStep rounds x up or down to a visually clean value from the set
// {1, 2, 5, 10} × 10ⁿ. The leading digit snaps at thresholds 1.5, 3.5, and
// 7.5, so grid and scale-bar lengths stay evenly spread across zoom levels.
// Non-positive input returns 1.
func NiceStep(x float64) float64 {
	if x <= 0 {
		return 1.0
	}
	exp := math.Floor(math.Log10(x))
	pow := math.Pow(10, exp)
	frac := x / pow

	var nice float64
	switch {
	case frac < 1.5:
		nice = 1.0
	case frac < 3.5:
		nice = 2.0
	case frac < 7.5:
		nice = 5.0
	default:
		nice = 10.0
	}
	return nice * pow
}
