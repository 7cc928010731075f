package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

// decay is dx/dt = -x, solution x0*exp(-t).
type decay struct{}

func (d *decay) Dim() int                           { return 1 }
func (d *decay) Derive(x dynamo.State) dynamo.State { return dynamo.State{-x[0]} }

// eulerStep is a minimal integrator for loop-behavior tests.
type eulerStep struct{}

func (e *eulerStep) Increment(f dynamo.Field, x dynamo.State, h float64) dynamo.State {
	return f.Derive(x).Scale(h)
}

// nanField immediately produces a non-finite derivative.
type nanField struct{}

func (n *nanField) Dim() int                           { return 1 }
func (n *nanField) Derive(x dynamo.State) dynamo.State { return dynamo.State{math.NaN()} }

func TestSimulator_Run(t *testing.T) {
	s := New(&decay{}, &eulerStep{})

	cfg := Config{Dt: 0.1, Steps: 11}
	x0 := dynamo.State{1.0}

	traj, err := s.Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if traj.Len() != 11 {
		t.Errorf("expected 11 states, got %d", traj.Len())
	}
	if traj.States[0][0] != 1.0 {
		t.Errorf("States[0] = %v, want exact initial state", traj.States[0])
	}

	final := traj.Final()[0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, final)
	}
}

func TestSimulator_InvalidConfig(t *testing.T) {
	s := New(&decay{}, &eulerStep{})

	tests := []struct {
		name string
		x0   dynamo.State
		cfg  Config
	}{
		{"zero dt", dynamo.State{1}, Config{Dt: 0, Steps: 10}},
		{"negative dt", dynamo.State{1}, Config{Dt: -0.1, Steps: 10}},
		{"zero steps", dynamo.State{1}, Config{Dt: 0.1, Steps: 0}},
		{"negative steps", dynamo.State{1}, Config{Dt: 0.1, Steps: -5}},
		{"wrong dimension", dynamo.State{1, 2}, Config{Dt: 0.1, Steps: 10}},
		{"nan initial state", dynamo.State{math.NaN()}, Config{Dt: 0.1, Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Run(context.Background(), tt.x0, tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulator_SingleStep(t *testing.T) {
	s := New(&decay{}, &eulerStep{})

	traj, err := s.Run(context.Background(), dynamo.State{3.5}, Config{Dt: 0.01, Steps: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if traj.Len() != 1 {
		t.Fatalf("expected 1 state, got %d", traj.Len())
	}
	if traj.States[0][0] != 3.5 {
		t.Errorf("States[0] = %v, want initial state only", traj.States[0])
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	cfg := Config{Dt: 0.1, Steps: 100}
	x0 := dynamo.State{1.0}

	a, err := New(&decay{}, &eulerStep{}).Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(&decay{}, &eulerStep{}).Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.States {
		for j := range a.States[i] {
			if a.States[i][j] != b.States[i][j] {
				t.Fatalf("trajectories differ at step %d component %d: %v vs %v",
					i, j, a.States[i][j], b.States[i][j])
			}
		}
	}
}

func TestSimulator_InitialStateIsolated(t *testing.T) {
	s := New(&decay{}, &eulerStep{})
	x0 := dynamo.State{1.0}

	traj, err := s.Run(context.Background(), x0, Config{Dt: 0.1, Steps: 5})
	if err != nil {
		t.Fatal(err)
	}

	x0[0] = 42
	if traj.States[0][0] != 1.0 {
		t.Error("trajectory shares storage with caller's initial state")
	}
}

func TestSimulator_DivergencePropagates(t *testing.T) {
	s := New(&nanField{}, &eulerStep{})

	traj, err := s.Run(context.Background(), dynamo.State{1}, Config{Dt: 0.1, Steps: 10})
	if err != nil {
		t.Fatalf("default policy must not fail on divergence: %v", err)
	}
	if traj.Len() != 10 {
		t.Fatalf("expected full-length trajectory, got %d states", traj.Len())
	}
	if !math.IsNaN(traj.Final()[0]) {
		t.Error("expected NaN to propagate to the final state")
	}
}

func TestSimulator_DivergenceFailFast(t *testing.T) {
	s := New(&nanField{}, &eulerStep{})

	_, err := s.Run(context.Background(), dynamo.State{1},
		Config{Dt: 0.1, Steps: 10, ValidateState: true})
	if !errors.Is(err, dynamo.ErrUnstable) {
		t.Fatalf("expected ErrUnstable, got %v", err)
	}

	var simErr *dynamo.SimulationError
	if !errors.As(err, &simErr) {
		t.Fatal("expected SimulationError wrapper")
	}
	if simErr.Step != 1 {
		t.Errorf("expected failure at step 1, got %d", simErr.Step)
	}
}

func TestSimulator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(&decay{}, &eulerStep{})
	_, err := s.Run(ctx, dynamo.State{1}, Config{Dt: 0.1, Steps: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
