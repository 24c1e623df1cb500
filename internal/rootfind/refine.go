package rootfind

import "math"

const (
	// maxRefine caps the control iterations of Refine. Reaching it is not an
	// error; the latest estimate is returned.
	maxRefine = 100

	// relTol is the bracket width, relative to its lower end, at which
	// Refine stops.
	relTol = 1e-6

	historySize = 20
	maxTable    = 10

	// ratioGuard forces bisection when the two bracket values differ by more
	// than a factor of 1/ratioGuard.
	ratioGuard = 0.01

	denomFloor = 1e-10
)

// Refine narrows the bracket [c1, c2], whose function values del1 and del2
// differ in sign, to a root of f. Each step either halves the bracket or
// extrapolates the inverse function c(del) to del = 0 through up to ten
// previous estimates. Halving is used whenever an estimate falls outside the
// bracket, the secant slopes on either side of the last estimate disagree,
// or |del1| and |del2| differ by more than a factor of 100.
func Refine(f Func, c1, c2, del1, del2 float64) float64 {
	var x, y [historySize]float64

	c3 := 0.5 * (c1 + c2)
	del3 := f(c3)
	nev := 1
	m := 1

	for n := 2; n < maxRefine; n++ {
		if c3 < min(c1, c2) || c3 > max(c1, c2) {
			nev = 0
			c3 = 0.5 * (c1 + c2)
			del3 = f(c3)
		}

		s13 := del1 - del3
		s32 := del3 - del2

		if sign(del3)*sign(del1) < 0 {
			c2, del2 = c3, del3
		} else {
			c1, del1 = c3, del3
		}

		if math.Abs(c1-c2) <= relTol*c1 {
			break
		}

		if sign(s13) != sign(s32) {
			nev = 0
		}

		ss1 := math.Abs(del1)
		ss2 := math.Abs(del2)

		if ratioGuard*ss1 > ss2 || ratioGuard*ss2 > ss1 || nev == 0 {
			c3 = 0.5 * (c1 + c2)
			del3 = f(c3)
			nev, m = 1, 1

			continue
		}

		if nev == 2 {
			x[m-1] = c3
			y[m-1] = del3
		} else {
			x[0], y[0] = c1, del1
			x[1], y[1] = c2, del2
			m = 2
		}

		if !neville(&x, &y, m) {
			c3 = 0.5 * (c1 + c2)
			del3 = f(c3)
			nev, m = 1, 1

			continue
		}

		c3 = x[0]
		del3 = f(c3)
		nev = 2
		m = min(m+1, maxTable)
	}

	return c3
}

// neville extrapolates the m points (y[i], x[i]) to y = 0 in place, leaving
// the estimate in x[0]. It reports false when two ordinates are too close to
// divide by.
func neville(x, y *[historySize]float64, m int) bool {
	ym := y[m-1]

	for j := m - 2; j >= 0; j-- {
		denom := ym - y[j]
		if math.Abs(denom) < denomFloor*math.Abs(ym) {
			return false
		}

		x[j] = (-y[j]*x[j+1] + ym*x[j]) / denom
	}

	return true
}
