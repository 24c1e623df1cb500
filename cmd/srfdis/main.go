// Command srfdis computes Rayleigh-wave phase-velocity dispersion curves of
// layered earth models.
//
// Usage:
//
//	srfdis [flags] model.yaml [model.yaml ...]
//
// Each model file lists the periods and the layers, surface first; the last
// layer is the half-space:
//
//	name: soft-layer
//	periods: [0.5, 1, 2, 5, 10]
//	layers:
//	  - {thickness: 1.0, vp: 1.5, vs: 0.8, density: 1.9}
//	  - {thickness: 0.0, vp: 4.0, vs: 2.3, density: 2.5}
//
// Instead of periods a file may give log_periods: {min, max, count}.
// Models are solved concurrently.
//
// Examples:
//
//	srfdis model.yaml
//	srfdis --modes 3 --step 0.002 --format csv model.yaml > curves.csv
//	srfdis --format yaml --workers 4 a.yaml b.yaml c.yaml
//	SRFDIS_LOG_LEVEL=debug srfdis model.yaml
package main

import (
	"context"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
