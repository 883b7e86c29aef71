// Package numdiff derives fields from sampled scalar arrays.
package numdiff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Gradient returns the finite-difference gradient of u along rows (axis 0)
// and columns (axis 1), with unit spacing. Interior points use centered
// differences, the first and last sample on each axis use one-sided
// differences. An axis of length 1 has a zero gradient.
func Gradient(u mat.Matrix) (dRows, dCols *mat.Dense) {
	r, c := u.Dims()
	dRows = mat.NewDense(r, c, nil)
	dCols = mat.NewDense(r, c, nil)

	for j := 0; j < c && r > 1; j++ {
		dRows.Set(0, j, u.At(1, j)-u.At(0, j))
		for i := 1; i < r-1; i++ {
			dRows.Set(i, j, (u.At(i+1, j)-u.At(i-1, j))/2)
		}
		dRows.Set(r-1, j, u.At(r-1, j)-u.At(r-2, j))
	}

	for i := 0; i < r && c > 1; i++ {
		dCols.Set(i, 0, u.At(i, 1)-u.At(i, 0))
		for j := 1; j < c-1; j++ {
			dCols.Set(i, j, (u.At(i, j+1)-u.At(i, j-1))/2)
		}
		dCols.Set(i, c-1, u.At(i, c-1)-u.At(i, c-2))
	}

	return dRows, dCols
}

// NegGradient derives a field from a potential sampled with rows along y
// and columns along x: Ex = -∂U/∂col, Ey = -∂U/∂row. Derivatives are per
// grid index, so the result differs from the physical field by the grid
// spacing.
func NegGradient(u mat.Matrix) (ex, ey *mat.Dense) {
	gy, gx := Gradient(u)
	gx.Scale(-1, gx)
	gy.Scale(-1, gy)
	return gx, gy
}

// Magnitude returns hypot(ex, ey) elementwise.
func Magnitude(ex, ey mat.Matrix) *mat.Dense {
	var m mat.Dense
	m.Apply(func(i, j int, v float64) float64 {
		return math.Hypot(v, ey.At(i, j))
	}, ex)
	return &m
}

// LogColor returns 2·log|E|, the array used to color streamlines.
func LogColor(ex, ey mat.Matrix) *mat.Dense {
	m := Magnitude(ex, ey)
	m.Apply(func(_, _ int, v float64) float64 {
		return 2 * math.Log(v)
	}, m)
	return m
}
