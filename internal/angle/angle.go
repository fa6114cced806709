// Package angle provides circular arithmetic over ecliptic longitudes.
// All functions treat angles as degrees on a 360° circle and are pure:
// same inputs always produce the same outputs.
package angle

import "math"

// Normalize reduces any angle, including negative and multi-revolution
// values, to the canonical range [0, 360). An exact 360 maps to 0.
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod can yield -0 for negative multiples of 360.
	if d == 0 {
		return 0
	}
	return d
}

// Distance returns the absolute angular separation between two longitudes,
// always taking the shorter arc. The result is in [0, 180].
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Midpoint returns the short-arc midpoint of two longitudes in [0, 360).
// A naive arithmetic mean lands on the antipodal point whenever the pair
// straddles 0° Aries; when the raw difference exceeds 180° the mean is
// shifted by 180° to stay on the shorter arc. Midpoint is symmetric and
// Midpoint(x, x) == x for every x.
func Midpoint(a, b float64) float64 {
	a = Normalize(a)
	b = Normalize(b)
	m := (a + b) / 2
	if math.Abs(a-b) > 180 {
		m += 180
	}
	return Normalize(m)
}
