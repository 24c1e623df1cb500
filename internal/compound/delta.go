package compound

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// omegaFloor keeps the shear wavenumber finite for zero frequency.
const omegaFloor = 1e-4

// Delta evaluates the Rayleigh-wave period equation for wavenumber wvno and
// angular frequency omega. d, a, b and rho hold layer thickness, P velocity,
// S velocity and density from the surface down; the last entry describes the
// half-space and its thickness is ignored. The returned value changes sign
// at phase velocities omega/wvno of the normal modes.
func Delta(wvno, omega float64, d, a, b, rho []float64) float64 {
	omega = max(omega, omegaFloor)
	wvno2 := wvno * wvno

	n := len(d)
	xka := omega / a[n-1]
	xkb := omega / b[n-1]
	ra := vertical(wvno, xka)
	rb := vertical(wvno, xkb)
	t := b[n-1] / omega

	gammk := 2 * t * t
	gam := gammk * wvno2
	gamm1 := gam - 1
	rho1 := rho[n-1]

	e := [5]float64{
		rho1 * rho1 * (gamm1*gamm1 - gam*gammk*ra*rb),
		-rho1 * ra,
		rho1 * (gamm1 - gammk*ra*rb),
		rho1 * rb,
		wvno2 - ra*rb,
	}

	for m := n - 2; m >= 0; m-- {
		xka = omega / a[m]
		xkb = omega / b[m]
		t = b[m] / omega
		gammk = 2 * t * t
		gam = gammk * wvno2
		ra = vertical(wvno, xka)
		rb = vertical(wvno, xkb)

		dpth := d[m]
		pr := Eigen(ra*dpth, rb*dpth, ra, rb, wvno, xka, xkb, dpth)
		ca := Dunkin(wvno2, gam, gammk, rho[m], pr)

		e = propagate(e, &ca)
		Normalize(&e)
	}

	return e[0]
}

// propagate returns the row vector e multiplied by ca. Each output sums its
// five products in row order.
func propagate(e [5]float64, ca *Matrix) [5]float64 {
	var (
		out  [5]float64
		col  [5]float64
		prod [5]float64
	)

	for i := range out {
		for j := range col {
			col[j] = ca[j][i]
		}

		vecmath.MulBlock(prod[:], e[:], col[:])

		sum := 0.0
		for _, v := range prod {
			sum += v
		}

		out[i] = sum
	}

	return out
}

// vertical returns the vertical wavenumber sqrt(|wvno^2 - xk^2|).
func vertical(wvno, xk float64) float64 {
	return math.Sqrt((wvno + xk) * math.Abs(wvno-xk))
}
