// Package rootfind brackets and refines sign changes of a scalar function of
// phase velocity. Search walks a fixed velocity grid until the function
// changes sign, then Refine narrows the bracket with a mix of interval
// halving and Neville extrapolation of the inverse function.
//
// Both routines evaluate the function a bounded number of times per call
// and keep no state between calls; state that must survive from one search
// to the next is returned in a Result and passed back in by the caller.
package rootfind

// Func evaluates the function at phase velocity c.
type Func func(c float64) float64

// sign returns -1 for negative x and +1 otherwise. Zero counts as positive
// so that an exact root never leaves both bracket ends on the same side.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}
