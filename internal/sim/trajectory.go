package sim

import "github.com/avik-so/lorenzlab/internal/dynamo"

// Trajectory is the time-ordered sequence of states produced by one run.
// It is append-only during the run and read-only afterwards; no entry is
// mutated after being written.
type Trajectory struct {
	States []dynamo.State
	Dt     float64
}

func (tr *Trajectory) Len() int { return len(tr.States) }

// Component extracts the scalar time series of one state component, e.g.
// Component(2) is the Z-history fed to the maxima extractor.
func (tr *Trajectory) Component(idx int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[idx]
	}
	return out
}

// Times returns the time grid t_i = i*Dt.
func (tr *Trajectory) Times() []float64 {
	out := make([]float64, len(tr.States))
	for i := range out {
		out[i] = float64(i) * tr.Dt
	}
	return out
}

// Final returns the last state, or nil for an empty trajectory.
func (tr *Trajectory) Final() dynamo.State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}
