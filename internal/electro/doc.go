// Package electro evaluates electrostatic fields and potentials of point
// charges over a sampled grid.
//
// All functions are pure: they take a charge list and the meshgrid
// coordinate arrays and return freshly allocated arrays of the same shape.
// Contributions are summed by superposition:
//
//	X, Y := g.Mesh()
//	ex, ey := electro.Field(cs, X, Y)
//	u := electro.Potential(cs, X, Y)
//
// # Singularities
//
// No regularization is applied near a charge. A grid point that coincides
// with a charge position produces ±Inf or NaN entries; callers that need
// finite data must check for them.
package electro
