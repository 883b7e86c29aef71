package numdiff

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestGradientEdgePolicy(t *testing.T) {
	// rows: 1 4 9 16 along axis 1; axis 0 adds 10 per row squared
	u := mat.NewDense(3, 4, []float64{
		1, 4, 9, 16,
		11, 14, 19, 26,
		41, 44, 49, 56,
	})

	dRows, dCols := Gradient(u)

	wantCols := []float64{3, 4, 6, 7}
	for i := 0; i < 3; i++ {
		for j, w := range wantCols {
			if got := dCols.At(i, j); got != w {
				t.Errorf("dCols[%d][%d] = %f, want %f", i, j, got, w)
			}
		}
	}

	wantRows := []float64{10, 20, 30}
	for i, w := range wantRows {
		for j := 0; j < 4; j++ {
			if got := dRows.At(i, j); got != w {
				t.Errorf("dRows[%d][%d] = %f, want %f", i, j, got, w)
			}
		}
	}
}

func TestGradientSingleAxis(t *testing.T) {
	u := mat.NewDense(1, 3, []float64{0, 2, 6})
	dRows, dCols := Gradient(u)

	if dRows.At(0, 1) != 0 {
		t.Errorf("expected zero gradient along a length-1 axis, got %f", dRows.At(0, 1))
	}
	want := []float64{2, 3, 4}
	for j, w := range want {
		if dCols.At(0, j) != w {
			t.Errorf("dCols[0][%d] = %f, want %f", j, dCols.At(0, j), w)
		}
	}
}

func TestNegGradientLinearPotential(t *testing.T) {
	// U = 2*col - 3*row: Ex = -2, Ey = 3 everywhere
	u := mat.NewDense(4, 5, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			u.Set(i, j, 2*float64(j)-3*float64(i))
		}
	}

	ex, ey := NegGradient(u)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			if ex.At(i, j) != -2 || ey.At(i, j) != 3 {
				t.Fatalf("at (%d,%d): got (%f, %f), want (-2, 3)", i, j, ex.At(i, j), ey.At(i, j))
			}
		}
	}
}

func TestLogColor(t *testing.T) {
	ex := mat.NewDense(1, 3, []float64{3, 0, math.E})
	ey := mat.NewDense(1, 3, []float64{4, 0, 0})

	m := Magnitude(ex, ey)
	if m.At(0, 0) != 5 {
		t.Errorf("expected magnitude 5, got %f", m.At(0, 0))
	}

	c := LogColor(ex, ey)
	if !math.IsInf(c.At(0, 1), -1) {
		t.Errorf("expected -Inf color at zero field, got %f", c.At(0, 1))
	}
	if math.Abs(c.At(0, 2)-2) > 1e-12 {
		t.Errorf("expected color 2, got %f", c.At(0, 2))
	}
}
