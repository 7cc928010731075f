package analysis

import (
	"math"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
//  1. Integrate two trajectories whose starts differ by perturbation in the
//     first component.
//  2. Accumulate the log of their separation growth each step.
//  3. λ ≈ mean(ln(d/d0)) / h, renormalizing the pair whenever the
//     separation saturates.
func LyapunovExponent(
	f dynamo.Field,
	integ dynamo.Integrator,
	x0 dynamo.State,
	h float64,
	steps int,
	perturbation float64,
) float64 {
	if len(x0) == 0 || steps <= 0 || perturbation <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		x = x.Add(integ.Increment(f, x, h))
		xp = xp.Add(integ.Increment(f, xp, h))

		sep := xp.Sub(x).Norm()
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize to keep the pair in the linear regime.
		if sep > 1.0 {
			scale := d0 / sep
			for k := range xp {
				xp[k] = x[k] + (xp[k]-x[k])*scale
			}
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * h)
}
