package grid

import (
	"errors"
	"math"
	"testing"
)

func TestNewLinspace(t *testing.T) {
	g, err := New(64, 64, -3, 3)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if g.X[0] != -3 || g.X[63] != 3 {
		t.Errorf("expected endpoints -3 and 3, got %f and %f", g.X[0], g.X[63])
	}

	dx, dy := g.Spacing()
	if math.Abs(dx-6.0/63.0) > 1e-12 || math.Abs(dy-6.0/63.0) > 1e-12 {
		t.Errorf("unexpected spacing %f, %f", dx, dy)
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name     string
		nx, ny   int
		min, max float64
	}{
		{"single column", 1, 10, -1, 1},
		{"single row", 10, 1, -1, 1},
		{"empty range", 10, 10, 1, 1},
		{"reversed range", 10, 10, 2, -2},
	}

	for _, tt := range tests {
		_, err := New(tt.nx, tt.ny, tt.min, tt.max)
		if !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("%s: expected ErrInvalidGrid, got %v", tt.name, err)
		}
	}
}

func TestMeshShapeAndLayout(t *testing.T) {
	g, err := New(5, 3, -1, 1)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	X, Y := g.Mesh()
	xr, xc := X.Dims()
	yr, yc := Y.Dims()
	if xr != yr || xc != yc {
		t.Fatalf("mesh shapes differ: %dx%d vs %dx%d", xr, xc, yr, yc)
	}
	if xr != 3 || xc != 5 {
		t.Fatalf("expected 3x5, got %dx%d", xr, xc)
	}

	for i := 0; i < xr; i++ {
		for j := 0; j < xc; j++ {
			if X.At(i, j) != g.X[j] {
				t.Errorf("X[%d][%d] = %f, want %f", i, j, X.At(i, j), g.X[j])
			}
			if Y.At(i, j) != g.Y[i] {
				t.Errorf("Y[%d][%d] = %f, want %f", i, j, Y.At(i, j), g.Y[i])
			}
		}
	}
}

func TestPoint(t *testing.T) {
	g, _ := New(64, 32, -3, 3)

	if x, y := g.Point(0, 0); x != -3 || y != -3 {
		t.Errorf("origin index gave (%f, %f)", x, y)
	}
	x, y := g.Point(63, 31)
	if math.Abs(x-3) > 1e-12 || math.Abs(y-3) > 1e-12 {
		t.Errorf("far corner gave (%f, %f)", x, y)
	}
	dx, dy := g.Spacing()
	if x, y := g.Point(1.5, 0.5); math.Abs(x-(-3+1.5*dx)) > 1e-12 || math.Abs(y-(-3+0.5*dy)) > 1e-12 {
		t.Errorf("fractional index gave (%f, %f)", x, y)
	}
}

func TestNearestRow(t *testing.T) {
	g, _ := New(4, 5, -2, 2)
	if r := g.NearestRow(0); r != 2 {
		t.Errorf("expected row 2 for y=0, got %d", r)
	}
	if r := g.NearestRow(-10); r != 0 {
		t.Errorf("expected row 0, got %d", r)
	}
}
