package dynamo

import "math"

// State is a point in the phase space of a field. For the Lorenz system the
// components are (X, Y, Z): convective intensity, temperature differential,
// and vertical-profile distortion.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] + other[i]
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] - other[i]
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Field is an autonomous vector field: dX/dt = f(X). Implementations must be
// pure functions of the state; Derive is evaluated at off-grid states by the
// integrator's midpoint stages, not only at trajectory points.
type Field interface {
	Derive(x State) State
	Dim() int
}

// Integrator advances a state by one fixed step. Increment returns the change
// to add to x, not the new state, so the caller owns state construction.
type Integrator interface {
	Increment(f Field, x State, h float64) State
}

// Configurable is implemented by fields whose parameters can be adjusted at
// runtime, e.g. from the live view or a parameter sweep.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
