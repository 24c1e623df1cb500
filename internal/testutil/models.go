package testutil

import "math"

// Layers is a layered model as four parallel slices, surface first. The
// last entry is the half-space.
type Layers struct {
	Thickness []float64
	Vp        []float64
	Vs        []float64
	Density   []float64
}

// HalfSpace returns a model made of a single half-space.
func HalfSpace(vp, vs, rho float64) Layers {
	return Layers{
		Thickness: []float64{0},
		Vp:        []float64{vp},
		Vs:        []float64{vs},
		Density:   []float64{rho},
	}
}

// PoissonHalfSpace returns a half-space with Vp/Vs = sqrt(3).
func PoissonHalfSpace(vs, rho float64) Layers {
	return HalfSpace(vs*math.Sqrt(3), vs, rho)
}

// SoftLayer returns a 1 km low-velocity layer over a stiffer half-space
// (km, km/s, g/cm^3).
func SoftLayer() Layers {
	return Layers{
		Thickness: []float64{1.0, 0.0},
		Vp:        []float64{1.5, 4.0},
		Vs:        []float64{0.8, 2.3},
		Density:   []float64{1.9, 2.5},
	}
}

// Gradient returns n layers of thickness h whose velocities and density
// increase linearly with depth.
func Gradient(n int, h float64) Layers {
	l := Layers{
		Thickness: make([]float64, n),
		Vp:        make([]float64, n),
		Vs:        make([]float64, n),
		Density:   make([]float64, n),
	}
	for i := range n {
		f := float64(i)
		l.Thickness[i] = h
		l.Vp[i] = 2.0 + 0.15*f
		l.Vs[i] = 1.0 + 0.09*f
		l.Density[i] = 2.0 + 0.03*f
	}
	return l
}

// LogPeriods returns n periods spaced logarithmically from tmin to tmax.
func LogPeriods(tmin, tmax float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = tmin
		return out
	}
	step := math.Log(tmax/tmin) / float64(n-1)
	for i := range out {
		out[i] = tmin * math.Exp(step*float64(i))
	}
	return out
}
