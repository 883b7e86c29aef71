package stream

import (
	"math"

	"github.com/san-kum/efield/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Tangent is the unit-speed flow along a sampled field, in grid index
// coordinates. The state is (col, row); arc length is in axes units.
// Dir is +1 to follow the field and -1 to run against it.
type Tangent struct {
	U, V   mat.Matrix
	Dir    float64
	nx, ny float64
}

func NewTangent(u, v mat.Matrix, dir float64) *Tangent {
	r, c := u.Dims()
	return &Tangent{U: u, V: v, Dir: dir, nx: float64(c - 1), ny: float64(r - 1)}
}

func (t *Tangent) StateDim() int { return 2 }

// velocity returns the field at x scaled to axes units.
func (t *Tangent) velocity(x dynamo.State) (dynamo.State, error) {
	u, ok := bilinear(t.U, x[0], x[1])
	if !ok {
		return nil, dynamo.ErrInvalidState
	}
	v, ok := bilinear(t.V, x[0], x[1])
	if !ok {
		return nil, dynamo.ErrInvalidState
	}
	w := dynamo.State{u / t.nx, v / t.ny}
	if w.Norm() == 0 {
		return nil, dynamo.ErrStalled
	}
	if !w.IsValid() || math.IsInf(w.Norm(), 0) {
		return nil, dynamo.ErrInvalidState
	}
	return w, nil
}

// Check reports why the flow cannot continue from x: ErrInvalidState for
// an undefined field or position, ErrStalled for a zero field.
func (t *Tangent) Check(x dynamo.State) error {
	_, err := t.velocity(x)
	return err
}

// Derive returns an invalid state where Check fails.
func (t *Tangent) Derive(x dynamo.State, _ float64) dynamo.State {
	w, err := t.velocity(x)
	if err != nil {
		return dynamo.State{math.NaN(), math.NaN()}
	}
	d := w.Scale(t.Dir / w.Norm())
	return dynamo.State{d[0] * t.nx, d[1] * t.ny}
}
