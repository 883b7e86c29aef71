package stream

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/efield/internal/dynamo"
	"github.com/san-kum/efield/internal/grid"
	"github.com/san-kum/efield/internal/integrators"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrShapeMismatch = errors.New("stream: field arrays do not match the grid")
	ErrInvalidOption = errors.New("stream: invalid option")

	// ErrOccupied stops a line that runs into a cell claimed by another.
	ErrOccupied = errors.New("stream: cell already occupied")
	// ErrMaxLength stops a line that reached the maximum arc length.
	ErrMaxLength = errors.New("stream: maximum length reached")
)

type Options struct {
	// Density scales the occupancy mask; 1 gives a 30x30 mask.
	Density float64
	// MinLength and MaxLength bound a line's arc length in axes units.
	MinLength float64
	MaxLength float64
	// Integrator names the stepping scheme (see integrators.Names).
	Integrator string
}

func DefaultOptions() Options {
	return Options{Density: 1, MinLength: 0.1, MaxLength: 4, Integrator: "rk4"}
}

type Point struct {
	X, Y float64
}

// Arrow marks the flow direction halfway along a line.
type Arrow struct {
	Tail, Head Point
	Value      float64
}

type Line struct {
	Points []Point
	// Values holds the color array sampled at each point; NaN where the
	// color array is not finite.
	Values []float64
	Arrow  Arrow
	// Stops holds why the backward and forward halves ended, each a
	// *dynamo.StepError.
	Stops [2]error
}

// Length returns the polyline length in data units.
func (l Line) Length() float64 {
	total := 0.0
	for i := 1; i < len(l.Points); i++ {
		total += math.Hypot(l.Points[i].X-l.Points[i-1].X, l.Points[i].Y-l.Points[i-1].Y)
	}
	return total
}

type tracer struct {
	g          *grid.Grid
	u, v       mat.Matrix
	mask       *mask
	integ      dynamo.Integrator
	gx2m, gy2m float64
	ds         float64
	opts       Options
}

// Trace places streamlines for the field (u, v) sampled on g. color is
// sampled along each line; it may be nil.
func Trace(g *grid.Grid, u, v, color mat.Matrix, opts Options) ([]Line, error) {
	rows, cols := g.Shape()
	if r, c := u.Dims(); r != rows || c != cols {
		return nil, fmt.Errorf("%w: u is %dx%d, grid is %dx%d", ErrShapeMismatch, r, c, rows, cols)
	}
	if r, c := v.Dims(); r != rows || c != cols {
		return nil, fmt.Errorf("%w: v is %dx%d, grid is %dx%d", ErrShapeMismatch, r, c, rows, cols)
	}
	if color != nil {
		if r, c := color.Dims(); r != rows || c != cols {
			return nil, fmt.Errorf("%w: color is %dx%d, grid is %dx%d", ErrShapeMismatch, r, c, rows, cols)
		}
	}
	if opts.Density <= 0 {
		return nil, fmt.Errorf("%w: density must be positive, got %g", ErrInvalidOption, opts.Density)
	}
	if opts.MaxLength <= 0 || opts.MinLength < 0 {
		return nil, fmt.Errorf("%w: lengths must be positive, got min=%g max=%g", ErrInvalidOption, opts.MinLength, opts.MaxLength)
	}

	integ, err := integrators.Get(opts.Integrator)
	if err != nil {
		return nil, err
	}

	n := int(30 * opts.Density)
	if n < 2 {
		n = 2
	}
	t := &tracer{
		g:     g,
		u:     u,
		v:     v,
		mask:  newMask(n, n),
		integ: integ,
		gx2m:  float64(n-1) / float64(cols-1),
		gy2m:  float64(n-1) / float64(rows-1),
		ds:    math.Min(1/float64(n), 0.1),
		opts:  opts,
	}

	var lines []Line
	for _, seed := range seeds(n, n) {
		xm, ym := seed[0], seed[1]
		if t.mask.occupied(xm, ym) {
			continue
		}
		traj, stops := t.integrate(dynamo.State{float64(xm) / t.gx2m, float64(ym) / t.gy2m})
		if traj == nil {
			continue
		}
		line := t.toLine(traj, color)
		line.Stops = stops
		lines = append(lines, line)
	}
	return lines, nil
}

func (t *tracer) toMask(x dynamo.State) (int, int) {
	return int(x[0]*t.gx2m + 0.5), int(x[1]*t.gy2m + 0.5)
}

func (t *tracer) within(x dynamo.State) bool {
	if !x.IsValid() {
		return false
	}
	rows, cols := t.g.Shape()
	return x[0] >= 0 && x[0] <= float64(cols-1) && x[1] >= 0 && x[1] <= float64(rows-1)
}

func (t *tracer) integrate(x0 dynamo.State) ([]dynamo.State, [2]error) {
	t.mask.start(t.toMask(x0))

	sb, back, eb := t.walk(x0, -1)
	t.mask.resetStart(t.toMask(x0))
	sf, fwd, ef := t.walk(x0, 1)

	stops := [2]error{eb, ef}
	if sb+sf <= t.opts.MinLength || len(back)+len(fwd) < 3 {
		t.mask.undo()
		return nil, stops
	}

	traj := make([]dynamo.State, 0, len(back)+len(fwd)-1)
	for i := len(back) - 1; i >= 0; i-- {
		traj = append(traj, back[i])
	}
	return append(traj, fwd[1:]...), stops
}

// walk integrates from x0 in one direction. It returns the arc length
// covered, the visited states with x0 first, and why it stopped.
func (t *tracer) walk(x0 dynamo.State, dir float64) (float64, []dynamo.State, error) {
	sys := NewTangent(t.u, t.v, dir)
	x := x0.Clone()
	s := 0.0
	pts := []dynamo.State{x}

	stop := func(reason error) (float64, []dynamo.State, error) {
		return s, pts, &dynamo.StepError{Step: len(pts) - 1, State: x.Clone(), Wrapped: reason}
	}

	for {
		if err := sys.Check(x); err != nil {
			return stop(err)
		}
		next := t.integ.Step(sys, x, s, t.ds)
		if !next.IsValid() {
			// a stage failed; an Euler predictor tells leaving the grid
			// apart from a bad sample inside it
			if !t.within(x.Add(sys.Derive(x, s).Scale(t.ds))) {
				return stop(dynamo.ErrOutOfBounds)
			}
			return stop(dynamo.ErrInvalidState)
		}
		if !t.within(next) {
			return stop(dynamo.ErrOutOfBounds)
		}
		if !t.mask.update(t.toMask(next)) {
			return stop(ErrOccupied)
		}
		x = next
		pts = append(pts, x)
		s += t.ds
		if s+t.ds > t.opts.MaxLength {
			return stop(ErrMaxLength)
		}
	}
}

func (t *tracer) toLine(traj []dynamo.State, color mat.Matrix) Line {
	line := Line{
		Points: make([]Point, len(traj)),
		Values: make([]float64, len(traj)),
	}
	for i, x := range traj {
		px, py := t.g.Point(x[0], x[1])
		line.Points[i] = Point{X: px, Y: py}
		line.Values[i] = math.NaN()
		if color != nil {
			if c, ok := bilinear(color, x[0], x[1]); ok {
				line.Values[i] = c
			}
		}
	}

	// arrow at half the arc length, pointing along the segment there
	cum := make([]float64, len(line.Points))
	for i := 1; i < len(line.Points); i++ {
		a, b := line.Points[i-1], line.Points[i]
		cum[i] = cum[i-1] + math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	half := cum[len(cum)-1] / 2
	k := 0
	for k < len(cum)-2 && cum[k+1] < half {
		k++
	}
	tail, next := line.Points[k], line.Points[k+1]
	line.Arrow = Arrow{
		Tail:  tail,
		Head:  Point{X: (tail.X + next.X) / 2, Y: (tail.Y + next.Y) / 2},
		Value: line.Values[k],
	}
	return line
}

var stopReasons = []struct {
	name string
	err  error
}{
	{"out_of_bounds", dynamo.ErrOutOfBounds},
	{"stalled", dynamo.ErrStalled},
	{"invalid", dynamo.ErrInvalidState},
	{"occupied", ErrOccupied},
	{"max_length", ErrMaxLength},
}

// StopReason names the reason a line half ended, or "unknown".
func StopReason(err error) string {
	for _, r := range stopReasons {
		if errors.Is(err, r.err) {
			return r.name
		}
	}
	return "unknown"
}

// StopCounts tallies why line halves ended, keyed by StopReason.
func StopCounts(lines []Line) map[string]int {
	counts := make(map[string]int)
	for _, l := range lines {
		for _, err := range l.Stops {
			if err != nil {
				counts[StopReason(err)]++
			}
		}
	}
	return counts
}
