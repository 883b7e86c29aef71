package stream

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// bilinear samples a at fractional index coordinates (col, row). ok is
// false for non-finite coordinates, outside the array, or when the sampled
// value is not finite.
func bilinear(a mat.Matrix, col, row float64) (float64, bool) {
	if !finite(col) || !finite(row) {
		return math.NaN(), false
	}
	r, c := a.Dims()
	if col < 0 || row < 0 || col > float64(c-1) || row > float64(r-1) {
		return math.NaN(), false
	}

	x, y := int(col), int(row)
	xn, yn := x+1, y+1
	if xn > c-1 {
		xn = c - 1
	}
	if yn > r-1 {
		yn = r - 1
	}
	xt, yt := col-float64(x), row-float64(y)

	a0 := a.At(y, x)*(1-xt) + a.At(y, xn)*xt
	a1 := a.At(yn, x)*(1-xt) + a.At(yn, xn)*xt
	v := a0*(1-yt) + a1*yt

	return v, finite(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
