// Package render rasterizes phase portraits.
//
// Render composes three layers onto an RGBA canvas: a solid background
// (black in dark mode), streamlines of the Hamiltonian vector field
// colored by flow magnitude, and an optional quiver overlay of
// unit-normalized field vectors. Save writes the result as PNG.
//
// Streamlines are traced with fixed-step RK4 over a bilinear
// interpolation of the sampled field, seeded from a density-scaled
// occupancy mask so coverage stays even across the plane.
package render
