package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work, identified by its index in the batch.
type Task func(ctx context.Context, index int) error

// Pool runs tasks with a cap on how many are in flight.
type Pool struct {
	limit int
}

// New creates a pool admitting at most limit tasks at once.
// A limit below 1 is treated as 1.
func New(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit returns the maximum number of tasks in flight.
func (p *Pool) Limit() int {
	return p.limit
}

// Run executes task for every index in [0, n).
// It blocks until all admitted tasks returned and reports the first failure.
// If ctx is cancelled before all tasks were admitted, Run returns ctx.Err().
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := 0; i < n; i++ {
		// Stop admitting once a sibling failed or the caller gave up.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return task(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
