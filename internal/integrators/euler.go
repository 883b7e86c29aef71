package integrators

import "github.com/san-kum/efield/internal/dynamo"

// Euler takes a single slope sample per step. It is first order and is
// kept as the cheap reference for the streamline tracer.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, s, ds float64) dynamo.State {
	return x.Add(sys.Derive(x, s).Scale(ds))
}
