package electro

import (
	"math"

	"github.com/san-kum/efield/internal/charges"
	"gonum.org/v1/gonum/mat"
)

// PotentialOf returns U = q/r for a single charge.
func PotentialOf(c charges.Charge, X, Y *mat.Dense) *mat.Dense {
	var u mat.Dense
	u.Apply(func(i, j int, x float64) float64 {
		return potentialAt(c, x, Y.At(i, j))
	}, X)
	return &u
}

func Potential(cs []charges.Charge, X, Y *mat.Dense) *mat.Dense {
	r, c := X.Dims()
	u := mat.NewDense(r, c, nil)
	for _, q := range cs {
		u.Add(u, PotentialOf(q, X, Y))
	}
	return u
}

func PotentialAt(cs []charges.Charge, x, y float64) float64 {
	u := 0.0
	for _, c := range cs {
		u += potentialAt(c, x, y)
	}
	return u
}

func potentialAt(c charges.Charge, x, y float64) float64 {
	return c.Q / math.Hypot(x-c.X, y-c.Y)
}

// NonFinite counts NaN and ±Inf entries of m.
func NonFinite(m mat.Matrix) int {
	r, c := m.Dims()
	n := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				n++
			}
		}
	}
	return n
}
