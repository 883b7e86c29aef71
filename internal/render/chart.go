package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/efield/internal/stream"
)

var ErrUnknownFormat = errors.New("render: unknown format")

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// plotFraction approximates the share of the image width taken by the
// plotting area once axes and padding are laid out.
const plotFraction = 0.85

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func polyline(pts []stream.Point, style chart.Style) chart.ContinuousSeries {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style}
}

func ticks(v float64, w float64) []chart.Tick {
	var out []chart.Tick
	step := 1.0
	if w <= 4 {
		step = 0.5
	}
	for t := math.Ceil(v/step) * step; t <= v+w+1e-9; t += step {
		out = append(out, chart.Tick{Value: t, Label: fmt.Sprintf("%g", t)})
	}
	return out
}

// Chart lays the figure out as a go-chart graph.
func (f *Figure) Chart() chart.Chart {
	lo, hi := f.View.Min, f.View.Max
	black := drawing.Color{A: 255}

	series := []chart.Series{
		polyline([]stream.Point{{X: lo, Y: lo}, {X: hi, Y: lo}, {X: hi, Y: hi}, {X: lo, Y: hi}, {X: lo, Y: lo}},
			chart.Style{StrokeColor: black, StrokeWidth: 1}),
	}
	for _, s := range f.Segments() {
		series = append(series, polyline(s.Points, chart.Style{
			StrokeColor: toDrawing(s.Color),
			StrokeWidth: f.Style.LineWidth,
		}))
	}
	for _, s := range f.ArrowHeads() {
		series = append(series, polyline(s.Points, chart.Style{
			StrokeColor: toDrawing(s.Color),
			StrokeWidth: f.Style.LineWidth,
		}))
	}

	radius := ChargeRadius / (hi - lo) * float64(f.Style.Width) * plotFraction
	if radius < 2 {
		radius = 2
	}
	for _, c := range f.VisibleCharges() {
		col := toDrawing(ChargeColor(c))
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{c.X},
			YValues: []float64{c.Y},
			Style: chart.Style{
				DotColor: col,
				DotWidth: radius,
			},
		})
	}

	return chart.Chart{
		Title:  f.Title,
		Width:  f.Style.Width,
		Height: f.Style.Height,
		XAxis: chart.XAxis{
			Name:  "x",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: ticks(lo, hi-lo),
		},
		YAxis: chart.YAxis{
			Name:  "y",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: ticks(lo, hi-lo),
		},
		Series: series,
	}
}

// WriteChart renders the figure to w in the given format.
func WriteChart(w io.Writer, f *Figure, format string) error {
	graph := f.Chart()
	switch format {
	case FormatPNG:
		return graph.Render(chart.PNG, w)
	case FormatSVG:
		return graph.Render(chart.SVG, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes the figure to dir/<name>.<format> and returns the path.
func Save(dir string, f *Figure, format string) (string, error) {
	if format != FormatPNG && format != FormatSVG {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.Name+"."+format)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteChart(file, f, format); err != nil {
		file.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, file.Close()
}
