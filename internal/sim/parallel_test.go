package sim

import (
	"context"
	"testing"

	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/field"
	"github.com/avik-so/lorenzlab/internal/integrators"
)

func TestEnsemble_MatchesSequential(t *testing.T) {
	cfg := Config{Dt: 0.01, Steps: 500}
	starts := []dynamo.State{
		{0.0, 0.1, 0.0},
		{0.0, 0.1001, 0.0},
		{1.0, 1.0, 1.0},
	}

	e := NewEnsemble(
		func() dynamo.Field { return field.NewLorenz() },
		func() dynamo.Integrator { return integrators.NewRK4() },
	)

	parallel, err := e.Run(context.Background(), starts, cfg)
	if err != nil {
		t.Fatalf("ensemble run failed: %v", err)
	}
	if len(parallel) != len(starts) {
		t.Fatalf("expected %d trajectories, got %d", len(starts), len(parallel))
	}

	for i, x0 := range starts {
		s := New(field.NewLorenz(), integrators.NewRK4())
		want, err := s.Run(context.Background(), x0, cfg)
		if err != nil {
			t.Fatal(err)
		}

		got := parallel[i]
		if got.Len() != want.Len() {
			t.Fatalf("trajectory %d: length %d, want %d", i, got.Len(), want.Len())
		}
		for j := range want.States {
			for k := range want.States[j] {
				if got.States[j][k] != want.States[j][k] {
					t.Fatalf("trajectory %d diverges from sequential run at step %d", i, j)
				}
			}
		}
	}
}

func TestEnsemble_Empty(t *testing.T) {
	e := NewEnsemble(
		func() dynamo.Field { return field.NewLorenz() },
		func() dynamo.Integrator { return integrators.NewRK4() },
	)

	results, err := e.Run(context.Background(), nil, Config{Dt: 0.01, Steps: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no trajectories, got %d", len(results))
	}
}
