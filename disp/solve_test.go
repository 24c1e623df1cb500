package disp

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-surf/internal/testutil"
)

func modelOf(l testutil.Layers) Model {
	return Model{Thickness: l.Thickness, Vp: l.Vp, Vs: l.Vs, Density: l.Density}
}

func mustSolver(t *testing.T, opts ...Option) *Solver {
	t.Helper()
	s, err := NewSolver(opts...)
	require.NoError(t, err)
	return s
}

func TestSolveHalfSpaceMatchesNewton(t *testing.T) {
	l := testutil.PoissonHalfSpace(2.0, 2.5)
	want := HalfSpaceVelocity(l.Vp[0], l.Vs[0])

	curve := mustSolver(t).Solve([]float64{1, 5}, modelOf(l))
	require.Equal(t, 1, curve.Modes())

	for k, v := range curve.Velocities[0] {
		assert.InEpsilonf(t, want, v, 2e-6, "period %v", curve.Periods[k])
	}
}

func TestSolveSoftLayer(t *testing.T) {
	periods := []float64{0.1, 1, 10}
	curve := mustSolver(t).Solve(periods, modelOf(testutil.SoftLayer()))

	row := curve.Velocities[0]
	testutil.RequireFinite(t, row)
	testutil.RequireNonDecreasing(t, row, 2e-6)

	// Short periods sample the layer, long periods the half-space.
	assert.InDelta(t, HalfSpaceVelocity(1.5, 0.8), row[0], 1e-5)
	assert.InDelta(t, 2.004, row[2], 1e-3)
	assert.Less(t, row[2], HalfSpaceVelocity(4.0, 2.3))
	assert.Equal(t, 3, curve.Resolved(0))
}

func TestSolveModeOrdering(t *testing.T) {
	periods := []float64{0.1, 0.2, 0.5, 1.0}
	curve := mustSolver(t, WithModes(3)).Solve(periods, modelOf(testutil.SoftLayer()))

	require.Equal(t, 3, curve.Modes())

	for iq := range curve.Modes() {
		require.Equal(t, len(periods), curve.Resolved(iq))
		testutil.RequireNonDecreasing(t, curve.Velocities[iq], 2e-6)
	}

	for k := range periods {
		assert.Less(t, curve.Velocities[0][k], curve.Velocities[1][k])
		assert.Less(t, curve.Velocities[1][k], curve.Velocities[2][k])
	}
}

func TestSolveTruncatesHigherModes(t *testing.T) {
	periods := []float64{0.2, 20, 30}
	model := modelOf(testutil.SoftLayer())

	t.Run("last mode", func(t *testing.T) {
		curve := mustSolver(t, WithModes(2)).Solve(periods, model)

		assert.InDelta(t, 0.8032, curve.Velocities[1][0], 1e-3)
		assert.Equal(t, []float64{0, 0}, curve.Velocities[1][1:])
		assert.Equal(t, 1, curve.Resolved(1))
		assert.Len(t, curve.Mode(1), 1)

		// The fundamental mode is unaffected.
		assert.Equal(t, 3, curve.Resolved(0))
	})

	t.Run("middle mode", func(t *testing.T) {
		curve := mustSolver(t, WithModes(3)).Solve(periods, model)

		assert.Equal(t, []float64{0, 0}, curve.Velocities[1][1:])
		assert.InDelta(t, 0.813, curve.Velocities[2][0], 1e-3)
		assert.Equal(t, []float64{0, 0}, curve.Velocities[2][1:])
	})
}

// linearDelta has a single root at c = 1.8 + 0.01*T for every period T.
type linearDelta struct {
	omegas []float64
}

func (d *linearDelta) eval(wvno, omega float64) float64 {
	d.omegas = append(d.omegas, omega)
	period := 2 * math.Pi / omega
	return omega/wvno - (1.8 + 0.01*period)
}

func TestSolveStopsAfterLastModeFails(t *testing.T) {
	l := testutil.PoissonHalfSpace(2.0, 2.5)
	periods := []float64{1, 2, 3}

	calls := make(map[int]int)

	for _, modes := range []int{1, 2, 3} {
		var d linearDelta

		s := mustSolver(t, WithModes(modes))
		curve := s.solve(periods, modelOf(l), d.eval)

		testutil.RequireSliceNearlyEqual(t, curve.Velocities[0], []float64{1.81, 1.82, 1.83}, 1e-5)

		for iq := 1; iq < modes; iq++ {
			assert.Equal(t, []float64{0, 0, 0}, curve.Velocities[iq])
		}

		if modes > 1 {
			// The failing mode gives up at the first period and nothing
			// is evaluated after it.
			last := d.omegas[len(d.omegas)-1]
			assert.InDelta(t, 2*math.Pi/periods[0], last, 1e-12)
		}

		calls[modes] = len(d.omegas)
	}

	assert.Less(t, calls[1], calls[2])
	assert.Less(t, calls[2], calls[3])
}

func TestSolveIsDeterministic(t *testing.T) {
	l := testutil.Gradient(6, 0.4)
	periods := testutil.LogPeriods(0.3, 6, 8)
	s := mustSolver(t, WithModes(2))

	a := s.Solve(periods, modelOf(l))
	b := s.Solve(periods, modelOf(l))
	assert.Equal(t, a, b)
}

func TestSolveEmptyInputs(t *testing.T) {
	s := mustSolver(t, WithModes(2))

	curve := s.Solve(nil, modelOf(testutil.SoftLayer()))
	assert.Equal(t, 2, curve.Modes())
	assert.Empty(t, curve.Velocities[0])

	curve = s.Solve([]float64{1, 2}, Model{})
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, curve.Velocities)
}

func TestSolveLogsTruncation(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s := mustSolver(t, WithModes(2), WithLogger(logger))
	s.Solve([]float64{0.2, 20, 30}, modelOf(testutil.SoftLayer()))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "mode truncated", entry.Message)
	assert.Equal(t, 1, entry.Data["mode"])
	assert.Equal(t, 20.0, entry.Data["period"])
}

func TestSolveDispersionCurve(t *testing.T) {
	l := testutil.SoftLayer()
	periods := []float64{0.2, 20, 30}

	got := SolveDispersionCurve(periods, l.Thickness, l.Vp, l.Vs, l.Density, 2, 0.005)
	want := mustSolver(t, WithModes(2)).Solve(periods, modelOf(l))

	assert.Equal(t, want.Velocities, got)
}

func TestSeedFor(t *testing.T) {
	const (
		cc = 0.7
		cm = 0.7
		dc = 0.01
	)

	c := []float64{0.9, 1.1, 1.4}

	tests := []struct {
		name  string
		iq, k int
		want  seed
	}{
		{name: "fundamental first period", iq: 0, k: 0, want: seed{c1: cc, clow: cc}},
		{name: "higher first period", iq: 1, k: 0, want: seed{c1: 0.9 + 0.0001, clow: 0}},
		{name: "higher later period", iq: 2, k: 2, want: seed{c1: 1.4 + 0.0001, clow: 1.4 + 0.0001}},
		{name: "fundamental later period", iq: 0, k: 1, want: seed{c1: 0.9 - 0.015, clow: cm}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seedFor(tt.iq, tt.k, c, cc, cm, dc)
			assert.InDelta(t, tt.want.c1, got.c1, 1e-15)
			assert.InDelta(t, tt.want.clow, got.clow, 1e-15)
		})
	}

	// The previous period wins when it is above the mode below.
	got := seedFor(1, 1, []float64{1.2, 1.0}, cc, cm, dc)
	assert.Equal(t, 1.2, got.c1)
}
