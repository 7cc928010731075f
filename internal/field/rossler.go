package field

import (
	"fmt"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

// Rossler is the Rossler band system
//
//	dx/dt = −y − z
//	dy/dt = x + ay
//	dz/dt = b + z(x − c)
//
// chaotic at the default (0.2, 0.2, 5.7).
type Rossler struct{ a, b, c float64 }

func NewRossler() *Rossler { return &Rossler{0.2, 0.2, 5.7} }

func (r *Rossler) Dim() int { return 3 }

// Derive evaluates the Rossler derivatives at s.
func (r *Rossler) Derive(s dynamo.State) dynamo.State {
	return dynamo.State{
		-s[1] - s[2],
		s[0] + r.a*s[1],
		r.b + s[2]*(s[0]-r.c),
	}
}

func (r *Rossler) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

func (r *Rossler) GetParams() map[string]float64 {
	return map[string]float64{"a": r.a, "b": r.b, "c": r.c}
}

func (r *Rossler) SetParam(name string, v float64) error {
	switch name {
	case "a":
		r.a = v
	case "b":
		r.b = v
	case "c":
		r.c = v
	default:
		return fmt.Errorf("rossler: %w: %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
