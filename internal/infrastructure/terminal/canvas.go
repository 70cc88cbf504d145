// Package terminal runs the game inside a text terminal using tcell.
//
// The logical court keeps its pixel size; every drawing call is projected
// onto the character grid, so the game plays the same at any terminal size.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/render"
)

const (
	blockRune = '█'
	vlineRune = '│'
	hlineRune = '─'
)

// Canvas implements render.Canvas on a tcell screen
type Canvas struct {
	screen tcell.Screen
	width  int // Logical size in pixels
	height int
	bg     tcell.Color
}

// NewCanvas creates a canvas mapping a width x height court onto screen
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{
		screen: screen,
		width:  width,
		height: height,
		bg:     tcell.ColorBlack,
	}
}

// Size returns the logical size, not the cell grid
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Fill(clr color.Color) {
	c.bg = toColor(clr)
	style := tcell.StyleDefault.Background(c.bg)
	cols, rows := c.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	x0, y0 := c.cell(x, y)
	x1, y1 := c.cell(x+w, y+h)
	// Anything visible covers at least one cell
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	style := c.style(clr)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, blockRune, nil, style)
		}
	}
}

func (c *Canvas) DrawLine(x0, y0, x1, y1, _ int, clr color.Color) {
	cx0, cy0 := c.cell(x0, y0)
	cx1, cy1 := c.cell(x1, y1)

	r := blockRune
	switch {
	case cx0 == cx1:
		r = vlineRune
	case cy0 == cy1:
		r = hlineRune
	}

	dx, dy := cx1-cx0, cy1-cy0
	steps := max(abs(dx), abs(dy))
	style := c.style(clr)
	for i := 0; i <= steps; i++ {
		cx, cy := cx0, cy0
		if steps > 0 {
			cx += dx * i / steps
			cy += dy * i / steps
		}
		c.setClipped(cx, cy, r, style)
	}
}

func (c *Canvas) DrawText(text string, x, y int, align render.Align, clr color.Color) {
	cx, cy := c.cell(x, y)
	runes := []rune(text)
	if align == render.AlignCenter {
		cx -= len(runes) / 2
	}
	style := c.style(clr)
	for i, r := range runes {
		c.setClipped(cx+i, cy, r, style)
	}
}

// cell projects a logical pixel position onto the grid
func (c *Canvas) cell(x, y int) (int, int) {
	cols, rows := c.screen.Size()
	return x * cols / c.width, y * rows / c.height
}

func (c *Canvas) setClipped(x, y int, r rune, style tcell.Style) {
	cols, rows := c.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

func (c *Canvas) style(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(clr)).Background(c.bg)
}

func toColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
