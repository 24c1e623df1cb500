package disp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one model to solve in a batch.
type Job struct {
	Name    string
	Periods []float64
	Model   Model
}

// SolveBatch solves independent jobs concurrently, at most limit at a time
// (no limit when limit <= 0). Results are returned in job order. Each job
// checks ctx before it starts; a job already running finishes. A job
// without periods fails the batch with ErrNoPeriods.
func (s *Solver) SolveBatch(ctx context.Context, jobs []Job, limit int) ([]Curve, error) {
	out := make([]Curve, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if len(job.Periods) == 0 {
				return fmt.Errorf("%w: job %d %q", ErrNoPeriods, i, job.Name)
			}

			out[i] = s.Solve(job.Periods, job.Model)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
