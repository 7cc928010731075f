package dynamo

import (
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"finite", State{1.0, -2.5, 0.0}, true},
		{"empty", State{}, true},
		{"nan", State{1.0, math.NaN(), 0.0}, false},
		{"pos inf", State{math.Inf(1), 0, 0}, false},
		{"neg inf", State{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Clone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("clone shares backing array with original")
	}
}

func TestState_Arithmetic(t *testing.T) {
	a := State{1, 2, 3}
	b := State{0.5, -1, 2}

	sum := a.Add(b)
	for i, want := range []float64{1.5, 1, 5} {
		if sum[i] != want {
			t.Errorf("Add[%d] = %v, want %v", i, sum[i], want)
		}
	}

	diff := a.Sub(b)
	for i, want := range []float64{0.5, 3, 1} {
		if diff[i] != want {
			t.Errorf("Sub[%d] = %v, want %v", i, diff[i], want)
		}
	}

	scaled := a.Scale(2)
	for i, want := range []float64{2, 4, 6} {
		if scaled[i] != want {
			t.Errorf("Scale[%d] = %v, want %v", i, scaled[i], want)
		}
	}

	// inputs untouched
	if a[0] != 1 || b[0] != 0.5 {
		t.Error("arithmetic mutated operands")
	}
}

func TestState_Norm(t *testing.T) {
	s := State{3, 4, 0}
	if got := s.Norm(); math.Abs(got-5) > 1e-15 {
		t.Errorf("Norm() = %v, want 5", got)
	}
}
