// Package dynamo provides the ODE primitives used to trace curves through
// a vector field.
//
// The package defines:
//
//   - [State]: vector representing a point on a curve
//   - [System]: interface for autonomous-in-form ODEs (dX/ds = f(X, s))
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	sys := stream.NewTangent(ex, ey, +1)
//	integ := integrators.NewRK4()
//	next := integ.Step(sys, x, s, ds)
//
// A [System] signals that the curve cannot continue by returning a state
// for which [State.IsValid] is false. Callers that stop a curve report the
// reason as a [StepError] wrapping [ErrOutOfBounds], [ErrStalled] or
// [ErrInvalidState].
package dynamo
