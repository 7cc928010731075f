// Package experiment wires configuration to the simulation pipeline: build
// field and integrator from their registered names, apply parameters, run
// the trajectory and extract the z maxima.
package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/avik-so/lorenzlab/internal/analysis"
	"github.com/avik-so/lorenzlab/internal/config"
	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/sim"
)

// Outcome is the output surface of one run: the full trajectory and the
// maxima sequence of its z component, ready for the rendering collaborators.
type Outcome struct {
	Trajectory *sim.Trajectory
	Maxima     []float64
}

type Experiment struct {
	cfg *config.Config
	reg *Registry
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, reg: NewRegistry()}
}

// BuildField constructs the configured field with parameters applied.
func (e *Experiment) BuildField() (dynamo.Field, error) {
	f, err := e.reg.GetField(e.cfg.Field)
	if err != nil {
		return nil, err
	}
	if err := applyParams(f, e.cfg.Params); err != nil {
		return nil, err
	}
	return f, nil
}

func applyParams(f dynamo.Field, params map[string]float64) error {
	if len(params) == 0 {
		return nil
	}
	c, ok := f.(dynamo.Configurable)
	if !ok {
		return fmt.Errorf("field does not accept parameters")
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.SetParam(k, params[k]); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the configured simulation and extracts the z maxima.
func (e *Experiment) Run(ctx context.Context) (*Outcome, error) {
	f, err := e.BuildField()
	if err != nil {
		return nil, err
	}
	integ, err := e.reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return nil, err
	}

	s := sim.New(f, integ)
	traj, err := s.Run(ctx, e.cfg.InitState(), sim.Config{
		Dt:            e.cfg.Dt,
		Steps:         e.cfg.Steps,
		ValidateState: e.cfg.ValidateState,
	})
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Trajectory: traj,
		Maxima:     analysis.LocalMaxima(traj.Component(2)),
	}, nil
}
