package integrators

import "github.com/avik-so/lorenzlab/internal/dynamo"

// Euler is the first-order forward Euler stepper. Kept for integrator
// comparisons; RK4 is the default everywhere.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Increment(f dynamo.Field, x dynamo.State, h float64) dynamo.State {
	dx := f.Derive(x)
	delta := make(dynamo.State, len(x))
	for i := range x {
		delta[i] = h * dx[i]
	}
	return delta
}
