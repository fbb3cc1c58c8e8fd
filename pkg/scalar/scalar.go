// Package scalar collects the small float32 scalar helpers the geometry
// and profile packages share, generalized from the teacher's
// pkg/core/math scalar helper package.
package scalar

import "github.com/chewxy/math32"

// Epsilon is the default numerical tolerance used across this module:
// degeneracy thresholds, monotonicity guards, and binary-search cutoffs.
const Epsilon = 1e-6

// Clamp restricts a to the closed interval [min, max].
func Clamp(a, min, max float32) float32 {
	switch {
	case a > max:
		return max
	case a < min:
		return min
	default:
		return a
	}
}

// SQR returns a*a.
func SQR(a float32) float32 {
	return a * a
}

// Pytag returns sqrt(a^2+b^2) without intermediate overflow.
func Pytag(a, b float32) float32 {
	absa := math32.Abs(a)
	absb := math32.Abs(b)
	if absa > absb {
		if absa == 0 {
			return 0
		}
		return absa * math32.Sqrt(1.0+SQR(absb/absa))
	}
	if absb > 0 {
		return absb * math32.Sqrt(1.0+SQR(absa/absb))
	}
	return 0
}

// NormalizeAngle wraps angle (radians) into (-pi, pi].
func NormalizeAngle(angle float32) float32 {
	for angle > math32.Pi {
		angle -= 2 * math32.Pi
	}
	for angle <= -math32.Pi {
		angle += 2 * math32.Pi
	}
	return angle
}

// NaNToZero replaces a NaN value with zero, the documented fallback for
// the curvature and derivative formulas that divide by |p'(u)|.
func NaNToZero(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return v
}
