// Package analysis provides tools for characterizing simulated trajectories.
//
//   - [LocalMaxima]: strict local maxima of a scalar time series
//   - [ReturnMap]: successive-maxima pairs, the Lorenz map
//   - [Summary]: descriptive statistics of a maxima sequence
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(f, integ, x0, h, steps, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
