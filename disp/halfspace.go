package disp

import "math"

// newtonSteps is the fixed iteration count of HalfSpaceVelocity.
const newtonSteps = 5

// HalfSpaceVelocity returns the Rayleigh-wave velocity of a homogeneous
// half-space with P velocity vp and S velocity vs. It takes exactly five
// Newton steps from 0.95*vs on the Rayleigh secular function
//
//	(2 - k^2)^2 - 4*sqrt(1 - g^2*k^2)*sqrt(1 - k^2),  k = c/vs, g = vs/vp,
//
// which is ample for solids with vp > vs.
func HalfSpaceVelocity(vp, vs float64) float64 {
	c := 0.95 * vs
	gamma := vs / vp

	for range newtonSteps {
		kappa := c / vs
		k2 := kappa * kappa
		gk2 := (gamma * kappa) * (gamma * kappa)
		fac1 := math.Sqrt(1 - gk2)
		fac2 := math.Sqrt(1 - k2)

		fr := (2-k2)*(2-k2) - 4*fac1*fac2
		frp := -4 * (2 - k2) * kappa
		frp += 4 * fac2 * gamma * gamma * kappa / fac1
		frp += 4 * fac1 * kappa / fac2
		frp /= vs

		c -= fr / frp
	}

	return c
}
