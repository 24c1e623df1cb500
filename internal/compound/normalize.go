package compound

import "math"

// normFloor is the magnitude below which a vector is left unscaled.
const normFloor = 1e-40

// Normalize divides v in place by its largest absolute component. Vectors
// whose largest component is below 1e-40 are left untouched.
func Normalize(v *[5]float64) {
	peak := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	if peak < normFloor {
		peak = 1
	}

	for i := range v {
		v[i] /= peak
	}
}
