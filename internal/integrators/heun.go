package integrators

import "github.com/san-kum/efield/internal/dynamo"

// Heun is the explicit trapezoidal rule.
type Heun struct{}

func NewHeun() *Heun {
	return &Heun{}
}

func (h *Heun) Step(sys dynamo.System, x dynamo.State, s, ds float64) dynamo.State {
	k1 := sys.Derive(x, s)
	k2 := sys.Derive(x.Add(k1.Scale(ds)), s+ds)
	return x.Add(k1.Add(k2).Scale(ds / 2))
}
