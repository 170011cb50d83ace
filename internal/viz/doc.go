// Package viz renders phase portraits in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas mapped to a phase-space window
//   - [Model]: interactive viewer with pan, zoom and a quiver toggle
//
// # Key Bindings
//
//	h/j/k/l - Pan the viewport
//	+/-     - Zoom in/out
//	v       - Toggle the vector field overlay
//	r       - Reset the viewport
//	q       - Quit
package viz
