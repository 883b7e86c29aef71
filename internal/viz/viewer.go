package viz

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/efield/internal/render"
)

var ErrAborted = errors.New("viz: viewer aborted")

const (
	defaultWidth  = 80
	defaultHeight = 24
	minCanvasW    = 16
	minCanvasH    = 6
)

// Viewer shows figures one after the other. Closing the last figure ends
// the program.
type Viewer struct {
	figures       []*render.Figure
	current       int
	width, height int
	aborted       bool
}

func NewViewer(figs ...*render.Figure) Viewer {
	return Viewer{figures: figs, width: defaultWidth, height: defaultHeight}
}

func (v Viewer) Init() tea.Cmd {
	if len(v.figures) == 0 {
		return tea.Quit
	}
	return nil
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			v.aborted = true
			return v, tea.Quit
		case "q", "esc", "enter":
			v.current++
			if v.current >= len(v.figures) {
				return v, tea.Quit
			}
		}
	}
	return v, nil
}

// CanvasSize is the canvas size in cells for the current window, leaving
// room for the frame, title and footer lines.
func (v Viewer) CanvasSize() (int, int) {
	w, h := v.width-2, v.height-5
	if w < minCanvasW {
		w = minCanvasW
	}
	if h < minCanvasH {
		h = minCanvasH
	}
	return w, h
}

func (v Viewer) View() string {
	if v.Done() {
		return ""
	}
	w, h := v.CanvasSize()
	fig := v.figures[v.current]
	status := MetricLabel.Render("figure ") +
		MetricValue.Render(fmt.Sprintf("%d/%d", v.current+1, len(v.figures)))
	help := KeyHint.Render("q/esc close figure · ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		Terminal(fig, w, h),
		lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", help),
	)
}

// Done reports whether every figure has been closed.
func (v Viewer) Done() bool { return v.current >= len(v.figures) }

func (v Viewer) Aborted() bool { return v.aborted }

func (v Viewer) Current() int { return v.current }

// Show runs the viewer on the terminal until all figures are closed.
func Show(figs ...*render.Figure) error {
	m, err := tea.NewProgram(NewViewer(figs...), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if v, ok := m.(Viewer); ok && v.Aborted() {
		return ErrAborted
	}
	return nil
}
