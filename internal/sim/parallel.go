package sim

import (
	"context"
	"sync"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

// Ensemble integrates independent trajectories concurrently, one goroutine
// per start state. Trajectories share no mutable state, so no synchronization
// is needed between them; fields and integrators carry per-run scratch
// buffers and are created fresh for each goroutine via the factories.
type Ensemble struct {
	newField func() dynamo.Field
	newInteg func() dynamo.Integrator
}

func NewEnsemble(newField func() dynamo.Field, newInteg func() dynamo.Integrator) *Ensemble {
	return &Ensemble{newField: newField, newInteg: newInteg}
}

// Run integrates one trajectory per start state, all with the same config.
// Results are ordered like starts. The first error wins; remaining
// trajectories still run to completion before it is returned.
func (e *Ensemble) Run(ctx context.Context, starts []dynamo.State, cfg Config) ([]*Trajectory, error) {
	results := make([]*Trajectory, len(starts))
	errs := make([]error, len(starts))

	var wg sync.WaitGroup
	for i := range starts {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			s := New(e.newField(), e.newInteg())
			results[idx], errs[idx] = s.Run(ctx, starts[idx], cfg)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
