// Package hamiltonian provides built-in Hamiltonian systems for portrait
// rendering.
//
// Each system is a parameterized struct whose Equations method yields a
// [phase.Equations] closure over the current parameters:
//
//   - [HarmonicOscillator]: H = p^2/2m + k q^2/2
//   - [Pendulum]: H = p^2/2ml^2 + mgl(1 - cos q)
//   - [DoubleWell]: H = p^2/2 - a q^2/2 + b q^4/4
//   - [Onion]: dq/dt = q p, dp/dt = -k (nested closed orbits)
//
// Systems also expose Params/SetParam for runtime parameter adjustment
// from the CLI and the interactive viewer.
package hamiltonian
