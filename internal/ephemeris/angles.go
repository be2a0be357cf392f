package ephemeris

import "math"

// Normalize reduces a longitude to [0,360) using a true non-negative modulo.
func Normalize(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngleDiff returns the signed angular difference a−b unwrapped to (−180,180].
// Comparisons near the 0/360 seam must go through this helper so solvers never
// see the wrap discontinuity.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d <= -180 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}

// sinDeg evaluates sine of an angle given in degrees.
func sinDeg(degrees float64) float64 {
	return math.Sin(degrees * math.Pi / 180)
}
