// Package grid provides the uniform Cartesian sampling grid shared by the
// field and potential pipelines.
//
// A [Grid] holds the two axis vectors. [Grid.Mesh] expands them into the
// pair of coordinate arrays with meshgrid semantics: rows vary with y,
// columns vary with x, and both arrays have shape ny x nx.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGrid indicates grid dimensions or bounds that cannot be sampled.
var ErrInvalidGrid = errors.New("grid: invalid grid")

type Grid struct {
	X []float64
	Y []float64
}

// New samples nx points on [min, max] along x and ny points along y,
// endpoints included.
func New(nx, ny int, min, max float64) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points per axis, got %dx%d", ErrInvalidGrid, nx, ny)
	}
	if !(min < max) {
		return nil, fmt.Errorf("%w: range [%g, %g] is empty", ErrInvalidGrid, min, max)
	}
	return &Grid{
		X: floats.Span(make([]float64, nx), min, max),
		Y: floats.Span(make([]float64, ny), min, max),
	}, nil
}

// Shape returns (rows, cols) = (ny, nx).
func (g *Grid) Shape() (int, int) { return len(g.Y), len(g.X) }

func (g *Grid) Spacing() (dx, dy float64) {
	return g.X[1] - g.X[0], g.Y[1] - g.Y[0]
}

// Mesh expands the axes into coordinate arrays. X[i][j] = x[j], Y[i][j] = y[i].
func (g *Grid) Mesh() (*mat.Dense, *mat.Dense) {
	r, c := g.Shape()
	X := mat.NewDense(r, c, nil)
	Y := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		X.SetRow(i, g.X)
		for j := 0; j < c; j++ {
			Y.Set(i, j, g.Y[i])
		}
	}
	return X, Y
}

// Point maps fractional index coordinates back to data coordinates.
func (g *Grid) Point(col, row float64) (float64, float64) {
	dx, dy := g.Spacing()
	return g.X[0] + col*dx, g.Y[0] + row*dy
}

// NearestRow returns the row index whose y coordinate is closest to y.
func (g *Grid) NearestRow(y float64) int {
	best, bestDist := 0, -1.0
	for i, v := range g.Y {
		d := v - y
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
