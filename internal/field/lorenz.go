package field

import (
	"fmt"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

// Reference parameters from Lorenz (1963).
const (
	DefaultSigma = 10.0
	DefaultR     = 28.0
	DefaultB     = 8.0 / 3.0
)

// Lorenz is the three-variable convection system
//
//	dx/dt = σ(y − x)
//	dy/dt = (r − z)x − y
//	dz/dt = xy − bz
//
// with σ the Prandtl-like coefficient, r the Rayleigh-like control parameter
// and b a geometric factor. At the reference parameters the system is chaotic.
type Lorenz struct{ sigma, r, b float64 }

func NewLorenz() *Lorenz { return &Lorenz{DefaultSigma, DefaultR, DefaultB} }

func NewLorenzWith(sigma, r, b float64) *Lorenz { return &Lorenz{sigma, r, b} }

func (l *Lorenz) Dim() int { return 3 }

// Derive evaluates the Lorenz derivatives at s. Pure; s is not modified.
func (l *Lorenz) Derive(s dynamo.State) dynamo.State {
	return dynamo.State{
		l.sigma * (s[1] - s[0]),
		(l.r-s[2])*s[0] - s[1],
		s[0]*s[1] - l.b*s[2],
	}
}

// DefaultState is the conventional near-origin start used for the canonical
// run; the tiny Y offset kicks the trajectory off the unstable origin.
func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{0.0, 0.1, 0.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "r": l.r, "b": l.b}
}

func (l *Lorenz) SetParam(name string, v float64) error {
	switch name {
	case "sigma":
		l.sigma = v
	case "r":
		l.r = v
	case "b":
		l.b = v
	default:
		return fmt.Errorf("lorenz: %w: %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
