// Package gui shows field figures in a native raylib window.
package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/efield/internal/render"
)

var (
	ColBg      = rl.NewColor(255, 255, 255, 255)
	ColFrame   = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(40, 40, 40, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
)

type App struct {
	Figures       []*render.Figure
	Current       int
	Width, Height int32
	Font          rl.Font
}

// initWindow opens the window, sets the target FPS to 60 and disables
// the default exit key so Esc only closes the current figure.
func initWindow(w, h int32) {
	rl.InitWindow(w, h, "efield")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(figs ...*render.Figure) *App {
	w, h := int32(800), int32(600)
	if len(figs) > 0 && figs[0].Style.Width > 0 && figs[0].Style.Height > 0 {
		w, h = int32(figs[0].Style.Width), int32(figs[0].Style.Height)
	}
	return &App{Figures: figs, Width: w, Height: h}
}

// Run opens a window and shows the figures one after the other. It
// blocks until the last figure is closed or the window is shut.
func Run(figs ...*render.Figure) {
	if len(figs) == 0 {
		return
	}
	app := NewApp(figs...)
	initWindow(app.Width, app.Height)
	defer rl.CloseWindow()
	app.Font = rl.GetFontDefault()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && a.Current < len(a.Figures) {
		a.Update()
		if a.Current >= len(a.Figures) {
			return
		}
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.Current++
		if a.Current < len(a.Figures) {
			rl.SetWindowTitle("efield: " + a.Figures[a.Current].Name)
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	fig := a.Figures[a.Current]
	a.drawFigure(fig)
	a.DrawHUD(fig)

	rl.EndDrawing()
}

func (a *App) DrawHUD(fig *render.Figure) {
	title := fig.Title
	if title == "" {
		title = fig.Name
	}
	a.drawText(title, a.Width/2-rl.MeasureText(title, 20)/2, 12, 20, ColText)
	a.drawText(fmt.Sprintf("figure %d/%d", a.Current+1, len(a.Figures)), 12, a.Height-22, 14, ColTextDim)
	a.drawText("[Q/ESC] CLOSE FIGURE", a.Width-200, a.Height-22, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int32, size int32, col rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
