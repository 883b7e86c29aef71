package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/efield/internal/render"
	"github.com/san-kum/efield/internal/stream"
)

const margin = 50

// projection maps the square view window onto the largest square that
// fits the window below the title.
type projection struct {
	lo, hi float64
	ox, oy float32
	side   float32
}

func newProjection(fig *render.Figure, w, h int32) projection {
	side := float32(math.Min(float64(w), float64(h-margin/2)) - 2*margin)
	if side < 10 {
		side = 10
	}
	return projection{
		lo:   fig.View.Min,
		hi:   fig.View.Max,
		ox:   (float32(w) - side) / 2,
		oy:   (float32(h)-side)/2 + margin/4,
		side: side,
	}
}

func (p projection) point(q stream.Point) rl.Vector2 {
	u := float32((q.X - p.lo) / (p.hi - p.lo))
	v := float32((p.hi - q.Y) / (p.hi - p.lo))
	return rl.NewVector2(p.ox+u*p.side, p.oy+v*p.side)
}

func (p projection) length(d float64) float32 {
	return float32(d/(p.hi-p.lo)) * p.side
}

func (a *App) drawFigure(fig *render.Figure) {
	p := newProjection(fig, a.Width, a.Height)
	width := float32(fig.Style.LineWidth)
	if width <= 0 {
		width = 1
	}

	polyline := func(s render.Segment) {
		col := toRL(s.Color)
		for i := 1; i < len(s.Points); i++ {
			rl.DrawLineEx(p.point(s.Points[i-1]), p.point(s.Points[i]), width, col)
		}
	}
	for _, s := range fig.Segments() {
		polyline(s)
	}
	for _, s := range fig.ArrowHeads() {
		polyline(s)
	}

	radius := p.length(render.ChargeRadius)
	for _, c := range fig.VisibleCharges() {
		rl.DrawCircleV(p.point(stream.Point{X: c.X, Y: c.Y}), radius, toRL(render.ChargeColor(c)))
	}

	rl.DrawRectangleLines(int32(p.ox), int32(p.oy), int32(p.side), int32(p.side), ColFrame)
	a.drawAxes(p)
}

func (a *App) drawAxes(p projection) {
	step := 1.0
	if p.hi-p.lo <= 4 {
		step = 0.5
	}
	for t := math.Ceil(p.lo/step) * step; t <= p.hi+1e-9; t += step {
		label := fmt.Sprintf("%g", t)
		bx := p.point(stream.Point{X: t, Y: p.lo})
		a.drawText(label, int32(bx.X)-rl.MeasureText(label, 12)/2, int32(bx.Y)+6, 12, ColTextDim)
		ly := p.point(stream.Point{X: p.lo, Y: t})
		a.drawText(label, int32(ly.X)-rl.MeasureText(label, 12)-6, int32(ly.Y)-6, 12, ColTextDim)
	}
	a.drawText("x", int32(p.ox+p.side/2), int32(p.oy+p.side)+22, 14, ColText)
	a.drawText("y", int32(p.ox)-40, int32(p.oy+p.side/2), 14, ColText)
}
