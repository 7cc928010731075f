// Package dynamo provides core primitives for fixed-step integration of
// autonomous ordinary differential equations.
//
// The package defines the fundamental interfaces and types:
//
//   - [State]: vector representing a point in phase space
//   - [Field]: interface for autonomous vector fields (dX/dt = f(X))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Configurable]: runtime parameter adjustment
//
// # Example
//
//	f := field.NewLorenz()
//	integ := integrators.NewRK4()
//	s := sim.New(f, integ)
//	traj, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Integrator instances reuse scratch buffers and are NOT safe for concurrent
// use. For independent trajectories run in parallel, give each goroutine its
// own field and integrator (see sim.Ensemble).
package dynamo
