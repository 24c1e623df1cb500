package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	f     Func
	calls int
	at    []float64
}

func (c *counter) eval(v float64) float64 {
	c.calls++
	c.at = append(c.at, v)
	return c.f(v)
}

func TestRefineSmooth(t *testing.T) {
	tests := []struct {
		name   string
		f      Func
		c1, c2 float64
		root   float64
	}{
		{"exponential", func(c float64) float64 { return math.Exp(c) - 3 }, 0.5, 2, math.Log(3)},
		{"decreasing", func(c float64) float64 { return 2.5 - c*c }, 1, 3, math.Sqrt(2.5)},
		{"reversed bracket", func(c float64) float64 { return math.Sin(c) }, 3.5, 2.5, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cnt := &counter{f: tt.f}
			got := Refine(cnt.eval, tt.c1, tt.c2, tt.f(tt.c1), tt.f(tt.c2))

			assert.InEpsilon(t, tt.root, got, 2e-6)
			assert.Less(t, cnt.calls, 2*maxRefine)
		})
	}
}

func TestRefineFallsBackToBisection(t *testing.T) {
	// A flat cubic keeps |del1| and |del2| more than a factor 100 apart.
	f := func(c float64) float64 {
		d := c - 1.3
		return d * d * d
	}

	cnt := &counter{f: f}
	got := Refine(cnt.eval, 1, 2, f(1), f(2))

	assert.InEpsilon(t, 1.3, got, 2e-6)
	assert.Less(t, cnt.calls, maxRefine)
}

func TestRefineUsesExtrapolation(t *testing.T) {
	f := func(c float64) float64 { return math.Exp(c) - 3 }

	cnt := &counter{f: f}
	Refine(cnt.eval, 0.5, 2, f(0.5), f(2))

	// Pure halving of a bracket of width 1.5 needs about 21 evaluations.
	assert.Less(t, cnt.calls, 20)
}

func TestRefineIterationCap(t *testing.T) {
	// A root at negative velocity never meets the relative stopping rule.
	f := func(c float64) float64 { return math.Sin(c) + 0.3 }

	cnt := &counter{f: f}
	got := Refine(cnt.eval, -1, 1, f(-1), f(1))

	assert.LessOrEqual(t, cnt.calls, 2*maxRefine)
	assert.InDelta(t, math.Asin(-0.3), got, 1e-6)
}

func TestRefineExactRoot(t *testing.T) {
	// Extrapolation of a linear function lands on the root exactly.
	f := func(c float64) float64 { return c - 1.7123 }

	got := Refine(f, 1.75, 1.7, f(1.75), f(1.7))

	assert.InEpsilon(t, 1.7123, got, 2e-6)
}

func TestNeville(t *testing.T) {
	var x, y [historySize]float64

	// Linear data extrapolates exactly.
	x[0], y[0] = 1, -2
	x[1], y[1] = 3, 2
	assert.True(t, neville(&x, &y, 2))
	assert.InDelta(t, 2, x[0], 1e-15)

	// Equal ordinates cannot be inverted.
	x[0], y[0] = 1, 0.5
	x[1], y[1] = 3, 0.5
	assert.False(t, neville(&x, &y, 2))
}
