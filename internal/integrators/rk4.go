package integrators

import "github.com/avik-so/lorenzlab/internal/dynamo"

// RK4 is the classic explicit fourth-order Runge-Kutta stepper for
// autonomous fields. Stage buffers are reused across calls, so an instance
// must not be shared between goroutines.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynamo.State, n)
		r.k2 = make(dynamo.State, n)
		r.k3 = make(dynamo.State, n)
		r.k4 = make(dynamo.State, n)
		r.scratch = make(dynamo.State, n)
	}
}

// Increment returns the state change (h/6)(k1 + 2k2 + 2k3 + k4) for one step
// of size h from x. The input state is never modified.
func (r *RK4) Increment(f dynamo.Field, x dynamo.State, h float64) dynamo.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, f.Derive(x))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k1[i]
	}
	copy(r.k2, f.Derive(r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k2[i]
	}
	copy(r.k3, f.Derive(r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*r.k3[i]
	}
	copy(r.k4, f.Derive(r.scratch))

	delta := make(dynamo.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		delta[i] = h6 * (r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i])
	}

	return delta
}
