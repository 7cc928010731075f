package sim

import (
	"context"
	"fmt"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

type Config struct {
	// Dt is the fixed step size. Must be positive.
	Dt float64
	// Steps is the total trajectory length including the initial state.
	// Must be at least 1; Steps == 1 yields only the initial state.
	Steps int
	// ValidateState stops the run with dynamo.ErrUnstable as soon as a state
	// goes non-finite. Off by default: non-finite values then propagate
	// through the remaining trajectory exactly as unguarded floating-point
	// arithmetic would.
	ValidateState bool
}

// Simulator drives the strictly sequential time-marching loop for one field
// and one integrator. Each step's result is a data dependency of the next,
// so steps are never reordered or parallelized within one trajectory.
type Simulator struct {
	field dynamo.Field
	integ dynamo.Integrator
}

func New(f dynamo.Field, integ dynamo.Integrator) *Simulator {
	return &Simulator{field: f, integ: integ}
}

// Run integrates cfg.Steps states starting from x0. The returned trajectory
// has States[0] == x0 and States[i] = States[i-1] + Increment(States[i-1]).
// Configuration is validated before any integration occurs. Cancellation is
// only observed between steps.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg Config) (*Trajectory, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	states := make([]dynamo.State, cfg.Steps)
	states[0] = x0.Clone()

	x := states[0]
	for i := 1; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		x = x.Add(s.integ.Increment(s.field, x, cfg.Dt))

		if cfg.ValidateState && !x.IsValid() {
			return nil, &dynamo.SimulationError{
				Step:    i,
				Time:    float64(i) * cfg.Dt,
				State:   x.Clone(),
				Wrapped: dynamo.ErrUnstable,
			}
		}

		states[i] = x
	}

	return &Trajectory{States: states, Dt: cfg.Dt}, nil
}

func (s *Simulator) validate(x0 dynamo.State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("sim: steps must be at least 1, got %d", cfg.Steps)
	}
	if len(x0) != s.field.Dim() {
		return fmt.Errorf("sim: initial state has %d components, field wants %d: %w",
			len(x0), s.field.Dim(), dynamo.ErrDimensionMismatch)
	}
	if !x0.IsValid() {
		return fmt.Errorf("sim: initial state %v: %w", x0, dynamo.ErrInvalidState)
	}
	return nil
}
