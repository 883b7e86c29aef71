package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille canvas whose cells carry a foreground color. The
// last color written to a cell wins.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
	glyph         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.RGBA, h),
		glyph:  make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
		c.glyph[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is Width*2 by Height*4
// sub-pixels with y growing downward.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	col0, row := x/2, y/4
	if col0 >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col0] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col0] = col
}

// Put replaces the cell holding sub-pixel (x, y) with a glyph.
func (c *Canvas) Put(x, y int, r rune, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	col0, row := x/2, y/4
	if col0 >= c.Width || row >= c.Height {
		return
	}
	c.glyph[row][col0] = r
	c.Colors[row][col0] = col
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.glyph[i][j] = 0
			c.Colors[i][j] = color.RGBA{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the rune shown at a cell.
func (c *Canvas) Cell(col, row int) rune {
	if g := c.glyph[row][col]; g != 0 {
		return g
	}
	return c.Grid[row][col]
}

// String renders the canvas without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.Cell(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Styled renders the canvas with one lipgloss foreground per lit cell.
func (c *Canvas) Styled() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			r := c.Cell(col, row)
			if r == blank {
				b.WriteRune(r)
				continue
			}
			fg := lipgloss.Color(hexColor(c.Colors[row][col]))
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
