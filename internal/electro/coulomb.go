package electro

import (
	"math"

	"github.com/san-kum/efield/internal/charges"
	"gonum.org/v1/gonum/mat"
)

// FieldOf returns the field of a single charge:
// Ex = q(X-x0)/r³, Ey = q(Y-y0)/r³ with r = hypot(X-x0, Y-y0).
func FieldOf(c charges.Charge, X, Y *mat.Dense) (*mat.Dense, *mat.Dense) {
	r, cols := X.Dims()
	ex := mat.NewDense(r, cols, nil)
	ey := mat.NewDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			fx, fy := fieldAt(c, X.At(i, j), Y.At(i, j))
			ex.Set(i, j, fx)
			ey.Set(i, j, fy)
		}
	}
	return ex, ey
}

// Field sums the contribution of every charge. An empty charge list yields
// zero arrays.
func Field(cs []charges.Charge, X, Y *mat.Dense) (*mat.Dense, *mat.Dense) {
	r, c := X.Dims()
	ex := mat.NewDense(r, c, nil)
	ey := mat.NewDense(r, c, nil)
	for _, q := range cs {
		dx, dy := FieldOf(q, X, Y)
		ex.Add(ex, dx)
		ey.Add(ey, dy)
	}
	return ex, ey
}

// FieldAt evaluates the superposed field at a single point.
func FieldAt(cs []charges.Charge, x, y float64) (float64, float64) {
	var ex, ey float64
	for _, c := range cs {
		fx, fy := fieldAt(c, x, y)
		ex += fx
		ey += fy
	}
	return ex, ey
}

func fieldAt(c charges.Charge, x, y float64) (float64, float64) {
	rx, ry := x-c.X, y-c.Y
	den := math.Pow(math.Hypot(rx, ry), 3)
	return c.Q * rx / den, c.Q * ry / den
}
