package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/efield/internal/render"
	"github.com/san-kum/efield/internal/stream"
)

const chargeGlyph = '●'

// Paint draws the figure onto a w x h cell canvas. The view window fills
// the canvas, y grows upward.
func Paint(f *render.Figure, w, h int) *Canvas {
	c := NewCanvas(w, h)
	lo, hi := f.View.Min, f.View.Max
	px := func(p stream.Point) (int, int) {
		sx := (p.X - lo) / (hi - lo) * float64(2*c.Width-1)
		sy := (hi - p.Y) / (hi - lo) * float64(4*c.Height-1)
		return int(math.Round(sx)), int(math.Round(sy))
	}
	polyline := func(s render.Segment) {
		for i := 1; i < len(s.Points); i++ {
			x0, y0 := px(s.Points[i-1])
			x1, y1 := px(s.Points[i])
			c.DrawLine(x0, y0, x1, y1, s.Color)
		}
	}
	for _, s := range f.Segments() {
		polyline(s)
	}
	for _, s := range f.ArrowHeads() {
		polyline(s)
	}
	for _, q := range f.VisibleCharges() {
		x, y := px(stream.Point{X: q.X, Y: q.Y})
		c.Put(x, y, chargeGlyph, render.ChargeColor(q))
	}
	return c
}

// Terminal renders the figure as a framed, colored text block whose
// canvas is w x h cells.
func Terminal(f *render.Figure, w, h int) string {
	c := Paint(f, w, h)
	title := TitleStyle.Render(f.Title)
	if f.Title == "" {
		title = TitleStyle.Render(f.Name)
	}
	lo, hi := f.View.Min, f.View.Max
	axes := Subtle.Render(fmt.Sprintf("x, y in [%g, %g]  %d lines  %d charges",
		lo, hi, len(f.Lines), len(f.Charges)))
	body := FrameStyle.Render(strings.TrimRight(c.Styled(), "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, axes)
}
