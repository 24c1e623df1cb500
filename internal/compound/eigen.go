// Package compound evaluates the Rayleigh-wave period equation of a layered
// half-space with Dunkin's compound (minor) matrices. The propagator is
// carried as a five-component vector from the half-space up to the free
// surface and rescaled after every layer so that deep, strongly evanescent
// stacks do not overflow.
package compound

import "math"

// Exponent limits for the evanescent forms. Exceeding them maps the factor
// to zero instead of evaluating exp on a huge argument.
const (
	phaseLimit    = 16.0
	decayLimit    = 60.0
	relDecayFloor = -40.0
)

// Products holds the eigenfunction products of one layer that enter the
// Dunkin matrix. CosQ, Y and Z carry the S-wave terms after they have been
// rescaled to the P-wave decay of the same layer.
type Products struct {
	W    float64
	CosP float64
	CosQ float64
	Y    float64
	Z    float64

	A0   float64
	CPCQ float64
	CPY  float64
	CPZ  float64
	CQW  float64
	CQX  float64
	XY   float64
	XZ   float64
	WY   float64
	WZ   float64
}

// Eigen computes the layer products for phase arguments p = ra*dpth and
// q = rb*dpth. The P and S terms are chosen independently by comparing wvno
// with the layer cutoff wavenumbers xka and xkb: oscillatory below the
// cutoff, linear at it, and a decaying exponential form above it.
func Eigen(p, q, ra, rb, wvno, xka, xkb, dpth float64) Products {
	var (
		cosp, w, x float64
		pex        float64
	)

	switch {
	case wvno < xka:
		sinp := math.Sin(p)
		w = sinp / ra
		x = -ra * sinp
		cosp = math.Cos(p)
	case wvno == xka:
		cosp = 1
		w = dpth
		x = 0
	case wvno > xka:
		pex = p
		fac := 0.0
		if p < phaseLimit {
			fac = math.Exp(-2 * p)
		}
		cosp = (1 + fac) * 0.5
		sinp := (1 - fac) * 0.5
		w = sinp / ra
		x = ra * sinp
	}

	var (
		cosq, y, z float64
		sex        float64
	)

	switch {
	case wvno < xkb:
		sinq := math.Sin(q)
		y = sinq / rb
		z = -rb * sinq
		cosq = math.Cos(q)
	case wvno == xkb:
		cosq = 1
		y = dpth
		z = 0
	case wvno > xkb:
		sex = q
		fac := 0.0
		if q < phaseLimit {
			fac = math.Exp(-2 * q)
		}
		cosq = (1 + fac) * 0.5
		sinq := (1 - fac) * 0.5
		y = sinq / rb
		z = rb * sinq
	}

	exa := pex + sex
	a0 := 0.0
	if exa < decayLimit {
		a0 = math.Exp(-exa)
	}

	pr := Products{
		W:    w,
		CosP: cosp,
		A0:   a0,
		CPCQ: cosp * cosq,
		CPY:  cosp * y,
		CPZ:  cosp * z,
		CQW:  cosq * w,
		CQX:  cosq * x,
		XY:   x * y,
		XZ:   x * z,
		WY:   w * y,
		WZ:   w * z,
	}

	qmp := sex - pex
	fac := 0.0
	if qmp > relDecayFloor {
		fac = math.Exp(qmp)
	}

	pr.CosQ = cosq * fac
	pr.Y = y * fac
	pr.Z = z * fac

	return pr
}
