package rootfind

// Bounds limits the velocity walk of Search.
type Bounds struct {
	// Low is the lowest velocity the walk may step to. Reaching it turns
	// the walk upward.
	Low float64

	// Step is the grid spacing of the walk.
	Step float64

	// Floor is the lowest velocity at which a root is physically
	// admissible.
	Floor float64

	// Max is the largest shear velocity of the medium. Roots above it are
	// reported but flagged, and the walk gives up one step beyond it.
	Max float64
}

// Result is the outcome of one Search.
type Result struct {
	// Velocity is the refined root, or the last walked velocity when no
	// bracket was found.
	Velocity float64

	// Reference is the function value at the first search of the current
	// mode. Pass it back into the next Search of the same mode.
	Reference float64

	// OK is false when the walk left [Floor, Max+Step) without a sign
	// change, or when the refined root lies above Max.
	OK bool
}

// Search brackets a root of f starting at c1 and refines it.
//
// On the first search of a mode (first == true) the value f(c1) becomes the
// mode's reference and the walk goes upward. On later searches the walk goes
// downward when f(c1) and ref differ in sign, which keeps consecutive
// periods on the same branch.
func Search(f Func, c1 float64, b Bounds, first bool, ref float64) Result {
	del1 := f(c1)
	if first {
		ref = del1
	}

	idir := 1.0
	if !first && sign(ref)*sign(del1) < 0 {
		idir = -1
	}

	for {
		c2 := c1 + idir*b.Step

		if c2 <= b.Low {
			// del1 still belongs to the previous c1.
			idir = 1
			c1 = b.Low

			continue
		}

		del2 := f(c2)

		if sign(del1) != sign(del2) {
			c := Refine(f, c1, c2, del1, del2)

			return Result{Velocity: c, Reference: ref, OK: c <= b.Max}
		}

		c1, del1 = c2, del2

		if c1 < b.Floor || c1 >= b.Max+b.Step {
			return Result{Velocity: c1, Reference: ref, OK: false}
		}
	}
}
