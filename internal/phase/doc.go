// Package phase provides the phase-space primitives for portrait rendering.
//
// The package defines the grid and vector-field types shared by every
// renderer in the repository:
//
//   - [Grid]: meshgrid of position and conjugate-momentum coordinates
//   - [Equations]: Hamilton's equations as a function of phase space
//   - [Field]: the Hamiltonian vector field sampled at each grid point
//
// # Example
//
//	eqs := func(q, p float64, args ...float64) (float64, float64) {
//	    m, k := args[0], args[1]
//	    return p / m, -k * q
//	}
//	grid := phase.Meshgrid(phase.Linspace(-5, 5, 21), phase.Linspace(-5, 5, 31))
//	field := phase.Evaluate(eqs, grid, 2, 10)
//
// Evaluate performs no validation of the supplied equations: NaN and Inf
// values propagate into the field, and a panicking equations function
// panics through to the caller.
package phase
