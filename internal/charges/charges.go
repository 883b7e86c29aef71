package charges

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownPlacement = errors.New("charges: unknown placement")

// Charge is a point charge of magnitude Q at (X, Y).
type Charge struct {
	Q, X, Y float64
}

func (c Charge) Positive() bool { return c.Q > 0 }

// Placement selects how the ring angle maps to a position.
type Placement int

const (
	// CosSin places charge i at (cos θ, sin θ). Used by the field pipeline.
	CosSin Placement = iota
	// SinCos places charge i at (sin θ, cos θ). Used by the potential pipeline.
	SinCos
)

func (p Placement) String() string {
	switch p {
	case CosSin:
		return "cossin"
	case SinCos:
		return "sincos"
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cossin", "cos,sin":
		return CosSin, nil
	case "sincos", "sin,cos":
		return SinCos, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// Place puts nq alternating unit charges on the unit circle at angles
// 2πi/nq, starting with +1 at i=0.
func Place(nq int, p Placement) []Charge {
	if nq <= 0 {
		return []Charge{}
	}
	cs := make([]Charge, nq)
	for i := 0; i < nq; i++ {
		q := 1.0
		if i%2 != 0 {
			q = -1.0
		}
		theta := 2 * math.Pi * float64(i) / float64(nq)
		s, c := math.Sincos(theta)
		if p == SinCos {
			cs[i] = Charge{Q: q, X: s, Y: c}
		} else {
			cs[i] = Charge{Q: q, X: c, Y: s}
		}
	}
	return cs
}

// Net returns the signed sum of the charges.
func Net(cs []Charge) float64 {
	sum := 0.0
	for _, c := range cs {
		sum += c.Q
	}
	return sum
}
