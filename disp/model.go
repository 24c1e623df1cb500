package disp

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-surf/internal/compound"
)

// Errors returned by model and solver construction.
var (
	ErrEmptyModel    = errors.New("disp: model has no layers")
	ErrLayerMismatch = errors.New("disp: layer slices differ in length")
	ErrInvalidModes  = errors.New("disp: mode count must be at least 1")
	ErrInvalidStep   = errors.New("disp: velocity step must be positive")
	ErrNoPeriods     = errors.New("disp: no periods")
)

// fluidShear is the shear velocity below which a layer counts as fluid.
const fluidShear = 0.01

// Model is a stack of homogeneous layers over a half-space, surface first.
// The last layer is the half-space; its thickness is ignored.
type Model struct {
	Thickness []float64
	Vp        []float64
	Vs        []float64
	Density   []float64
}

// NewModel builds a model from parallel layer slices. The slices are
// copied. Only the shape is checked: velocities and densities are taken as
// given.
func NewModel(thickness, vp, vs, density []float64) (Model, error) {
	n := len(thickness)
	if n == 0 {
		return Model{}, ErrEmptyModel
	}

	if len(vp) != n || len(vs) != n || len(density) != n {
		return Model{}, fmt.Errorf("%w: thickness=%d vp=%d vs=%d density=%d",
			ErrLayerMismatch, n, len(vp), len(vs), len(density))
	}

	return Model{
		Thickness: append([]float64(nil), thickness...),
		Vp:        append([]float64(nil), vp...),
		Vs:        append([]float64(nil), vs...),
		Density:   append([]float64(nil), density...),
	}, nil
}

// Layers returns the number of layers including the half-space.
func (m Model) Layers() int {
	return len(m.Thickness)
}

// delta evaluates the period equation of m.
func (m Model) delta(wvno, omega float64) float64 {
	return compound.Delta(wvno, omega, m.Thickness, m.Vp, m.Vs, m.Density)
}

// extrema describes the velocity range that bounds the root search.
type extrema struct {
	slowest int     // layer with the lowest effective shear velocity
	fluid   bool    // the slowest layer is fluid; its Vp stands in for Vs
	betmn   float64 // lowest effective shear velocity
	betmx   float64 // highest shear velocity
}

// extrema scans the layers for the slowest and fastest shear velocity.
// Fluid layers contribute their P velocity to the minimum.
func (m Model) extrema() extrema {
	ex := extrema{betmn: 1e20, betmx: -1e20}

	for i, vs := range m.Vs {
		switch {
		case vs > fluidShear && vs < ex.betmn:
			ex.betmn = vs
			ex.slowest = i
			ex.fluid = false
		case vs < fluidShear && m.Vp[i] < ex.betmn:
			ex.betmn = m.Vp[i]
			ex.slowest = i
			ex.fluid = true
		}

		ex.betmx = max(ex.betmx, vs)
	}

	return ex
}
