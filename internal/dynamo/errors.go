package dynamo

import "errors"

// Domain errors for curve integration.
var (
	// ErrInvalidState indicates a state containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrStalled indicates the field vanished under the curve.
	ErrStalled = errors.New("dynamo: field magnitude is zero")

	// ErrOutOfBounds indicates the curve left the sampled domain.
	ErrOutOfBounds = errors.New("dynamo: state left the domain")

	// ErrUnknownIntegrator indicates an integrator name with no registration.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")
)

// StepError wraps an error with the step at which integration stopped.
type StepError struct {
	Step    int
	State   State
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
