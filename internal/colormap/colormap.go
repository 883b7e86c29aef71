// Package colormap maps scalar values to colors for streamline plots.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

var ErrUnknownColormap = errors.New("colormap: unknown colormap")

// Colormap interpolates between evenly spaced anchor colors in Lab space.
type Colormap struct {
	Name  string
	stops []colorful.Color
	bad   colorful.Color
}

// New builds a colormap from hex anchors, first anchor at 0 and last at 1.
func New(name string, hexes ...string) (*Colormap, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("colormap %s: need at least 2 anchors", name)
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: anchor %d: %w", name, i, err)
		}
		stops[i] = c
	}
	return &Colormap{Name: name, stops: stops, bad: colorful.Color{R: 1, G: 1, B: 1}}, nil
}

func mustNew(name string, hexes ...string) *Colormap {
	m, err := New(name, hexes...)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	Inferno = mustNew("inferno",
		"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754",
		"#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4")

	Viridis = mustNew("viridis",
		"#440154", "#482475", "#414487", "#355f8d", "#2a788e", "#21918c",
		"#22a884", "#44bf70", "#7ad151", "#bddf26", "#fde725")

	Gray = mustNew("gray", "#000000", "#ffffff")

	registry = map[string]*Colormap{
		Inferno.Name: Inferno,
		Viridis.Name: Viridis,
		Gray.Name:    Gray,
	}
)

func Get(name string) (*Colormap, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownColormap, name, Names())
	}
	return m, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// At returns the color for t in [0, 1]. Values outside are clamped; NaN
// maps to the bad color.
func (m *Colormap) At(t float64) colorful.Color {
	if math.IsNaN(t) {
		return m.bad
	}
	t = math.Max(0, math.Min(1, t))

	seg := t * float64(len(m.stops)-1)
	i := int(seg)
	if i >= len(m.stops)-1 {
		return m.stops[len(m.stops)-1]
	}
	return m.stops[i].BlendLab(m.stops[i+1], seg-float64(i)).Clamped()
}

func (m *Colormap) RGBA(t float64) color.RGBA {
	r, g, b := m.At(t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (m *Colormap) Hex(t float64) string {
	return m.At(t).Hex()
}

// Norm linearly maps [Min, Max] onto [0, 1].
type Norm struct {
	Min, Max float64
}

// Scale returns NaN for non-finite inputs.
func (n Norm) Scale(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	if n.Max <= n.Min {
		return 0.5
	}
	return (v - n.Min) / (n.Max - n.Min)
}

// NormOf spans the finite entries of m. An array with no finite entry
// yields the zero Norm.
func NormOf(m mat.Matrix) Norm {
	r, c := m.Dims()
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return Norm{}
	}
	return Norm{Min: lo, Max: hi}
}
