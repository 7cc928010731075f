package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avik-so/lorenzlab/internal/analysis"
	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/field"
	"github.com/avik-so/lorenzlab/internal/integrators"
	"github.com/avik-so/lorenzlab/internal/sim"
)

const (
	canonicalDt    = 0.01
	canonicalSteps = 6113
)

func runLorenz(x0 dynamo.State) *sim.Trajectory {
	s := sim.New(field.NewLorenz(), integrators.NewRK4())
	traj, err := s.Run(context.Background(), x0, sim.Config{Dt: canonicalDt, Steps: canonicalSteps})
	Expect(err).NotTo(HaveOccurred())
	return traj
}

var _ = Describe("canonical Lorenz run", func() {
	var traj *sim.Trajectory

	BeforeEach(func() {
		traj = runLorenz(dynamo.State{0.0, 0.1, 0.0})
	})

	It("produces a full-length trajectory starting at the initial state", func() {
		Expect(traj.Len()).To(Equal(canonicalSteps))
		Expect(traj.States[0]).To(Equal(dynamo.State{0.0, 0.1, 0.0}))
	})

	It("stays finite and on the attractor's bounded region", func() {
		for _, s := range traj.States {
			Expect(s.IsValid()).To(BeTrue())
			Expect(math.Abs(s[0])).To(BeNumerically("<", 100))
			Expect(math.Abs(s[1])).To(BeNumerically("<", 100))
			Expect(s[2]).To(BeNumerically("<", 100))
		}
	})

	It("yields Z maxima in the attractor's characteristic band", func() {
		maxima := analysis.LocalMaxima(traj.Component(2))
		Expect(len(maxima)).To(BeNumerically(">", 20))
		for _, m := range maxima {
			Expect(m).To(BeNumerically(">", 20))
			Expect(m).To(BeNumerically("<", 60))
		}
	})

	It("is bit-identical across repeated runs", func() {
		again := runLorenz(dynamo.State{0.0, 0.1, 0.0})
		for i := range traj.States {
			Expect(again.States[i]).To(Equal(traj.States[i]))
		}
	})
})

var _ = Describe("sensitive dependence on initial conditions", func() {
	It("keeps perturbed trajectories close early and far apart later", func() {
		base := runLorenz(dynamo.State{0.0, 0.1, 0.0})
		perturbed := runLorenz(dynamo.State{0.0, 0.1 + 1e-5, 0.0})

		maxDiff := func(i int) float64 {
			d := 0.0
			for k := 0; k < 3; k++ {
				if v := math.Abs(base.States[i][k] - perturbed.States[i][k]); v > d {
					d = v
				}
			}
			return d
		}

		// Agreement over the first ~500 steps: small against the attractor's
		// O(40) extent even though the near-origin transient stretches fast.
		for i := 0; i < 500; i++ {
			Expect(maxDiff(i)).To(BeNumerically("<", 0.5))
		}

		// Substantial divergence well before the end of the run. With this
		// perturbation the separation first exceeds 1.0 at step 3067, so the
		// deadline leaves headroom without weakening the chaos check.
		diverged := false
		for i := 500; i < 3500; i++ {
			if maxDiff(i) > 1.0 {
				diverged = true
				break
			}
		}
		Expect(diverged).To(BeTrue(), "perturbation of 1e-5 should exceed 1.0 before step 3500")
	})
})

var _ = Describe("single-step boundary", func() {
	It("returns only the initial state and an empty maxima sequence", func() {
		s := sim.New(field.NewLorenz(), integrators.NewRK4())
		traj, err := s.Run(context.Background(), dynamo.State{0.0, 0.1, 0.0},
			sim.Config{Dt: canonicalDt, Steps: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(1))
		Expect(analysis.LocalMaxima(traj.Component(2))).To(BeEmpty())
	})
})
