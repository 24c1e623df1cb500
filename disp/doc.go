// Package disp computes Rayleigh-wave phase-velocity dispersion curves of
// horizontally layered elastic media.
//
// A model is a stack of homogeneous layers (thickness, P velocity,
// S velocity, density) over a half-space. For every requested period and
// mode the solver walks a phase-velocity grid until the Dunkin
// compound-matrix period equation changes sign and refines the crossing.
// Each period is seeded from the previous one, so the periods of a single
// curve are solved strictly in order.
//
// Units are not fixed, but must be consistent: the usual choice is km,
// km/s, g/cm^3 and seconds.
//
// # Usage
//
//	model, err := disp.NewModel(
//		[]float64{1.0, 0.0}, // thickness; the half-space value is ignored
//		[]float64{1.5, 4.0}, // Vp
//		[]float64{0.8, 2.3}, // Vs
//		[]float64{1.9, 2.5}, // density
//	)
//	if err != nil {
//		return err
//	}
//
//	solver, err := disp.NewSolver(disp.WithModes(2), disp.WithStep(0.005))
//	if err != nil {
//		return err
//	}
//
//	curve := solver.Solve([]float64{0.5, 1, 2, 5}, model)
//	fmt.Println(curve.Mode(0))
//
// # Unresolved periods
//
// A zero velocity marks a period at which a mode has no root below the
// largest shear velocity of the model. Once a higher mode fails at one
// period, it is zero for all later periods as well, and a failure in the
// last requested mode ends the computation.
package disp
