package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-surf/disp"
)

// result is the solved curve of one model file.
type result struct {
	Name  string
	Curve disp.Curve
}

type writeFunc func(io.Writer, []result) error

func writerFor(format string) (writeFunc, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return writeTable, nil
	case "csv":
		return writeCSV, nil
	case "yaml", "yml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (table, csv, yaml)", format)
	}
}

// writeTable prints one row per period with a column per mode. Unresolved
// entries are shown as "-".
func writeTable(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}

		header := []string{"Model", "Period"}
		rule := []string{"-----", "------"}
		for m := range r.Curve.Modes() {
			header = append(header, fmt.Sprintf("Mode %d", m))
			rule = append(rule, "------")
		}

		if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")); err != nil {
			return err
		}

		for k, period := range r.Curve.Periods {
			row := []string{r.Name, strconv.FormatFloat(period, 'g', 6, 64)}
			for _, vel := range r.Curve.Velocities {
				if vel[k] == 0 {
					row = append(row, "-")
				} else {
					row = append(row, fmt.Sprintf("%.6f", vel[k]))
				}
			}

			if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// writeCSV writes one record per resolved (model, mode, period).
func writeCSV(w io.Writer, results []result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"model", "mode", "period", "velocity"}); err != nil {
		return err
	}

	for _, r := range results {
		for m := range r.Curve.Modes() {
			for k, v := range r.Curve.Mode(m) {
				rec := []string{
					r.Name,
					strconv.Itoa(m),
					strconv.FormatFloat(r.Curve.Periods[k], 'g', -1, 64),
					strconv.FormatFloat(v, 'f', 6, 64),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

type curveDoc struct {
	Name    string      `yaml:"name"`
	Periods []float64   `yaml:"periods"`
	Modes   [][]float64 `yaml:"modes"`
}

// writeYAML writes the full velocity matrix of every model, zeros included.
func writeYAML(w io.Writer, results []result) error {
	docs := make([]curveDoc, len(results))
	for i, r := range results {
		docs[i] = curveDoc{Name: r.Name, Periods: r.Curve.Periods, Modes: r.Curve.Velocities}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(docs); err != nil {
		return err
	}

	return enc.Close()
}
