package geodesic

import "math"

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1

// NormalizeAngle reduces a longitude or azimuth (radians) to the range
// (-π, π].
//
// The reduction is a single scaled floor rather than repeated addition or
// subtraction of 2π, so a carelessly large input costs the same as a small
// one.
func NormalizeAngle(rad float64) float64 {
	if x := rad / math.Pi; math.Abs(x)-1 > 3*epsilon {
		x = 0.5 * (x + 1)
		rad = ((x - math.Floor(x)) - 0.5) * 2 * math.Pi
	}
	if rad <= -math.Pi {
		rad += 2 * math.Pi
	} else if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

// positiveAngle takes an angle in (-2π, 2π) to [0, 2π).
func positiveAngle(rad float64) float64 {
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}
