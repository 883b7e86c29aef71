// Package render turns pipeline results into figures: streamlines colored
// by 2·log|E|, one open arrow per line, and a filled marker per charge.
//
// A [Figure] is backend independent. [WriteChart] draws it as PNG or SVG;
// the terminal and window displays draw the same segments themselves.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/efield/internal/charges"
	"github.com/san-kum/efield/internal/colormap"
	"github.com/san-kum/efield/internal/config"
	"github.com/san-kum/efield/internal/pipeline"
	"github.com/san-kum/efield/internal/stream"
)

// ChargeRadius is the marker radius in data units.
const ChargeRadius = 0.05

// runLength is the number of segments drawn with a single color.
const runLength = 3

var (
	PositiveColor = color.RGBA{R: 0xaa, A: 0xff}
	NegativeColor = color.RGBA{B: 0xaa, A: 0xff}
)

type Style struct {
	Width, Height int
	LineWidth     float64
	ArrowSize     float64
	Colormap      *colormap.Colormap
}

type Figure struct {
	Name    string
	Title   string
	View    pipeline.View
	Charges []charges.Charge
	Lines   []stream.Line
	Norm    colormap.Norm
	Style   Style
}

// Segment is a polyline drawn in one color.
type Segment struct {
	Points []stream.Point
	Color  color.RGBA
}

// Build traces the streamlines of res and collects everything a figure
// needs.
func Build(res *pipeline.Result, sc config.StreamConfig, out config.OutputConfig) (*Figure, error) {
	cmap, err := colormap.Get(sc.Colormap)
	if err != nil {
		return nil, err
	}
	lines, err := stream.Trace(res.Grid, res.Ex, res.Ey, res.Color, stream.Options{
		Density:    sc.Density,
		MinLength:  sc.MinLength,
		MaxLength:  sc.MaxLength,
		Integrator: sc.Integrator,
	})
	if err != nil {
		return nil, fmt.Errorf("%s streamlines: %w", res.Name, err)
	}
	return &Figure{
		Name:    res.Name,
		Title:   res.Title,
		View:    res.View,
		Charges: res.Charges,
		Lines:   lines,
		Norm:    colormap.NormOf(res.Color),
		Style: Style{
			Width:     out.Width,
			Height:    out.Height,
			LineWidth: sc.LineWidth,
			ArrowSize: sc.ArrowSize,
			Colormap:  cmap,
		},
	}, nil
}

func (f *Figure) ColorOf(v float64) color.RGBA {
	return f.Style.Colormap.RGBA(f.Norm.Scale(v))
}

func ChargeColor(c charges.Charge) color.RGBA {
	if c.Positive() {
		return PositiveColor
	}
	return NegativeColor
}

// Segments splits every line into short single-color runs, dropping the
// parts outside the view.
func (f *Figure) Segments() []Segment {
	var out []Segment
	for _, l := range f.Lines {
		start := -1
		for i := 0; i <= len(l.Points); i++ {
			inside := i < len(l.Points) && f.View.Contains(l.Points[i].X, l.Points[i].Y)
			if inside && start < 0 {
				start = i
			}
			if !inside && start >= 0 {
				out = append(out, f.chunk(l, start, i)...)
				start = -1
			}
		}
	}
	return out
}

// chunk cuts points [lo, hi) of l into runs of runLength segments that
// share their end points.
func (f *Figure) chunk(l stream.Line, lo, hi int) []Segment {
	var out []Segment
	for a := lo; a < hi-1; a += runLength {
		b := a + runLength + 1
		if b > hi {
			b = hi
		}
		sum, n := 0.0, 0
		for k := a; k < b; k++ {
			if v := l.Values[k]; !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		v := math.NaN()
		if n > 0 {
			v = sum / float64(n)
		}
		pts := make([]stream.Point, b-a)
		copy(pts, l.Points[a:b])
		out = append(out, Segment{Points: pts, Color: f.ColorOf(v)})
	}
	return out
}

// ArrowHeads returns one open "->" head per line whose arrow lies in the
// view. Each head is a three-point polyline: wing, tip, wing.
func (f *Figure) ArrowHeads() []Segment {
	span := f.View.Max - f.View.Min
	size := 0.012 * span * f.Style.ArrowSize
	var out []Segment
	for _, l := range f.Lines {
		a := l.Arrow
		if !f.View.Contains(a.Head.X, a.Head.Y) {
			continue
		}
		dx, dy := a.Head.X-a.Tail.X, a.Head.Y-a.Tail.Y
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		dx, dy = dx/n, dy/n
		const spread = 0.5
		sin, cos := math.Sincos(spread)
		w1 := stream.Point{X: a.Head.X - size*(dx*cos-dy*sin), Y: a.Head.Y - size*(dx*sin+dy*cos)}
		w2 := stream.Point{X: a.Head.X - size*(dx*cos+dy*sin), Y: a.Head.Y - size*(-dx*sin+dy*cos)}
		out = append(out, Segment{
			Points: []stream.Point{w1, a.Head, w2},
			Color:  f.ColorOf(a.Value),
		})
	}
	return out
}

// VisibleCharges returns the charges inside the view.
func (f *Figure) VisibleCharges() []charges.Charge {
	var out []charges.Charge
	for _, c := range f.Charges {
		if f.View.Contains(c.X, c.Y) {
			out = append(out, c)
		}
	}
	return out
}
