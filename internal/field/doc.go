// Package field provides autonomous vector fields for simulation.
//
// Each field implements the [dynamo.Field] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Lorenz]: the Lorenz (1963) convection system, the butterfly attractor
//   - [Rossler]: the Rossler band, a second chaotic three-variable system
//
// Both fields implement [dynamo.Configurable] for runtime parameter
// adjustment from the live view and parameter sweeps.
package field
