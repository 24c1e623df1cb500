package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-surf/disp"
)

// layerSpec is one layer of a model file.
type layerSpec struct {
	Thickness float64 `mapstructure:"thickness"`
	Vp        float64 `mapstructure:"vp"`
	Vs        float64 `mapstructure:"vs"`
	Density   float64 `mapstructure:"density"`
}

// logSpacing describes logarithmically spaced periods.
type logSpacing struct {
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	Count int     `mapstructure:"count"`
}

// modelFile is the decoded content of a model file.
type modelFile struct {
	Name       string      `mapstructure:"name"`
	Periods    []float64   `mapstructure:"periods"`
	LogPeriods *logSpacing `mapstructure:"log_periods"`
	Layers     []layerSpec `mapstructure:"layers"`
}

// loadModelFile reads a model file into a solver job. The job is named
// after the file unless the file sets a name.
func loadModelFile(path string) (disp.Job, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return disp.Job{}, fmt.Errorf("read model %s: %w", path, err)
	}

	var mf modelFile
	if err := v.Unmarshal(&mf); err != nil {
		return disp.Job{}, fmt.Errorf("decode model %s: %w", path, err)
	}

	if mf.Name == "" {
		mf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	periods := mf.Periods
	if len(periods) == 0 && mf.LogPeriods != nil {
		var err error
		periods, err = mf.LogPeriods.periods()
		if err != nil {
			return disp.Job{}, fmt.Errorf("model %s: %w", path, err)
		}
	}

	if len(periods) == 0 {
		return disp.Job{}, fmt.Errorf("model %s: %w", path, disp.ErrNoPeriods)
	}

	n := len(mf.Layers)
	d := make([]float64, n)
	a := make([]float64, n)
	b := make([]float64, n)
	rho := make([]float64, n)

	for i, l := range mf.Layers {
		d[i], a[i], b[i], rho[i] = l.Thickness, l.Vp, l.Vs, l.Density
	}

	model, err := disp.NewModel(d, a, b, rho)
	if err != nil {
		return disp.Job{}, fmt.Errorf("model %s: %w", path, err)
	}

	return disp.Job{Name: mf.Name, Periods: periods, Model: model}, nil
}

func (s logSpacing) periods() ([]float64, error) {
	if s.Count < 1 || !(s.Min > 0) || s.Max < s.Min {
		return nil, fmt.Errorf("invalid log_periods min=%v max=%v count=%d", s.Min, s.Max, s.Count)
	}

	out := make([]float64, s.Count)
	if s.Count == 1 {
		out[0] = s.Min
		return out, nil
	}

	step := math.Log(s.Max/s.Min) / float64(s.Count-1)
	for i := range out {
		out[i] = s.Min * math.Exp(step*float64(i))
	}

	return out, nil
}
