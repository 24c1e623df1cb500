package disp

// Curve holds the phase velocities of a solve. Velocities[m][k] is the
// velocity of mode m at Periods[k]; zero marks an unresolved period.
type Curve struct {
	Periods    []float64
	Velocities [][]float64
}

func newCurve(periods []float64, modes int) Curve {
	vel := make([][]float64, max(modes, 0))
	for i := range vel {
		vel[i] = make([]float64, len(periods))
	}

	return Curve{
		Periods:    append([]float64(nil), periods...),
		Velocities: vel,
	}
}

// Modes returns the number of mode rows.
func (c Curve) Modes() int {
	return len(c.Velocities)
}

// Mode returns the velocities of mode m up to its first unresolved period.
// It returns nil for a mode index out of range.
func (c Curve) Mode(m int) []float64 {
	if m < 0 || m >= len(c.Velocities) {
		return nil
	}

	row := c.Velocities[m]
	return row[:c.Resolved(m)]
}

// Resolved returns how many leading periods of mode m have a root.
func (c Curve) Resolved(m int) int {
	if m < 0 || m >= len(c.Velocities) {
		return 0
	}

	for k, v := range c.Velocities[m] {
		if v == 0 {
			return k
		}
	}

	return len(c.Velocities[m])
}
