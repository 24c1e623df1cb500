package disp

import (
	"math"

	"github.com/cwbudde/algo-surf/internal/rootfind"
	"github.com/sirupsen/logrus"
)

// Seeding constants of the per-period search.
const (
	// seedNudge offsets a higher mode from the mode below it, in steps.
	seedNudge = 0.01

	// seedBackoff is how far below the previous root the fundamental
	// mode restarts, in steps.
	seedBackoff = 1.5

	// floorFactor scales the Rayleigh velocity of the slowest layer to
	// the lowest admissible phase velocity.
	floorFactor = 0.9
)

// deltaFunc evaluates a period equation for wavenumber and angular frequency.
type deltaFunc func(wvno, omega float64) float64

// Solver computes dispersion curves with a fixed configuration. A Solver is
// immutable and safe for concurrent use.
type Solver struct {
	cfg Config
}

// NewSolver returns a solver configured by opts.
func NewSolver(opts ...Option) (*Solver, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Solver{cfg: cfg}, nil
}

// Config returns the solver configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

// Solve computes the phase velocity of every configured mode at every
// period of the model. Periods are solved in the given order.
func (s *Solver) Solve(periods []float64, m Model) Curve {
	return s.solve(periods, m, m.delta)
}

// SolveDispersionCurve is the flat entry point: it returns a modes x
// len(periods) matrix of phase velocities for the layer slices, with zeros
// where a mode has no root. Inputs are not validated.
func SolveDispersionCurve(periods, thickness, vp, vs, rho []float64, modes int, dc float64) [][]float64 {
	s := &Solver{cfg: Config{Modes: modes, Step: dc, Logger: discardLogger()}}
	m := Model{Thickness: thickness, Vp: vp, Vs: vs, Density: rho}

	return s.solve(periods, m, m.delta).Velocities
}

// seed is the starting point and lower walk bound of one search.
type seed struct {
	c1   float64
	clow float64
}

// seedFor derives the search start of mode iq at period k from the roots c
// found so far. c[k] still holds the root of mode iq-1 at period k.
func seedFor(iq, k int, c []float64, cc, cm, dc float64) seed {
	switch {
	case k == 0 && iq == 0:
		return seed{c1: cc, clow: cc}
	case k == 0:
		return seed{c1: c[0] + seedNudge*dc, clow: 0}
	case iq > 0:
		clow := c[k] + seedNudge*dc
		return seed{c1: max(c[k-1], clow), clow: clow}
	default:
		return seed{c1: c[k-1] - seedBackoff*dc, clow: cm}
	}
}

func (s *Solver) solve(periods []float64, m Model, delta deltaFunc) Curve {
	modes, dc := s.cfg.Modes, s.cfg.Step
	curve := newCurve(periods, modes)

	if len(periods) == 0 || m.Layers() == 0 || modes < 1 {
		return curve
	}

	ex := m.extrema()

	var cc float64
	if ex.fluid {
		cc = m.Vp[ex.slowest]
	} else {
		cc = HalfSpaceVelocity(m.Vp[ex.slowest], m.Vs[ex.slowest])
	}

	cc *= floorFactor
	cm := cc

	c := make([]float64, len(periods))

	for iq := range modes {
		var ref float64

		for k, period := range periods {
			sd := seedFor(iq, k, c, cc, cm, dc)
			omega := 2 * math.Pi / period

			f := func(cv float64) float64 {
				return delta(omega/cv, omega)
			}

			res := rootfind.Search(f, sd.c1, rootfind.Bounds{
				Low:   sd.clow,
				Step:  dc,
				Floor: cm,
				Max:   ex.betmx,
			}, k == 0, ref)
			ref = res.Reference

			if !res.OK && iq > 0 {
				s.cfg.Logger.WithFields(logrus.Fields{
					"mode":   iq,
					"period": period,
				}).Debug("mode truncated")

				if iq == modes-1 {
					return curve
				}

				break
			}

			c[k] = res.Velocity
			curve.Velocities[iq][k] = res.Velocity
		}
	}

	return curve
}
