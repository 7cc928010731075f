package analysis

import (
	"testing"

	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/field"
	"github.com/avik-so/lorenzlab/internal/integrators"
)

// contracting is dx/dt = -x in three dimensions; all exponents negative.
type contracting struct{}

func (c *contracting) Dim() int { return 3 }
func (c *contracting) Derive(x dynamo.State) dynamo.State {
	return dynamo.State{-x[0], -x[1], -x[2]}
}

func TestLyapunovExponent_LorenzPositive(t *testing.T) {
	lambda := LyapunovExponent(
		field.NewLorenz(),
		integrators.NewRK4(),
		dynamo.State{1, 1, 1},
		0.01, 5000, 1e-8,
	)
	if lambda <= 0 {
		t.Errorf("Lorenz at reference parameters should be chaotic, lambda = %f", lambda)
	}
}

func TestLyapunovExponent_ContractingNegative(t *testing.T) {
	lambda := LyapunovExponent(
		&contracting{},
		integrators.NewRK4(),
		dynamo.State{1, 1, 1},
		0.01, 2000, 1e-8,
	)
	if lambda >= 0 {
		t.Errorf("contracting field should have negative exponent, lambda = %f", lambda)
	}
}

func TestLyapunovExponent_Degenerate(t *testing.T) {
	if l := LyapunovExponent(field.NewLorenz(), integrators.NewRK4(), dynamo.State{}, 0.01, 100, 1e-8); l != 0 {
		t.Errorf("empty state should give 0, got %f", l)
	}
	if l := LyapunovExponent(field.NewLorenz(), integrators.NewRK4(), dynamo.State{1, 1, 1}, 0.01, 0, 1e-8); l != 0 {
		t.Errorf("zero steps should give 0, got %f", l)
	}
}
