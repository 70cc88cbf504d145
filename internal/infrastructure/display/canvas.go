// Package display runs the game in an ebiten window.
package display

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pong/internal/application/render"
)

// Debug font glyph size in pixels
const (
	glyphW = 6
	glyphH = 16
)

// Canvas implements render.Canvas on an ebiten image.
// Text uses the debug font magnified by the configured scale.
type Canvas struct {
	target    *ebiten.Image
	textScale int

	// Rendered debug-font strings, white on transparent.
	// Strings not drawn during the previous frame are released.
	glyphs  map[string]*glyph
	release func(*ebiten.Image)
}

type glyph struct {
	img  *ebiten.Image
	used bool
}

// NewCanvas creates a canvas; call SetTarget before drawing
func NewCanvas(textScale int) *Canvas {
	if textScale < 1 {
		textScale = 1
	}
	return &Canvas{
		textScale: textScale,
		glyphs:    make(map[string]*glyph),
		release:   (*ebiten.Image).Deallocate,
	}
}

// SetTarget points the canvas at the frame being drawn
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
	c.sweep()
}

// sweep drops the text images the last frame did not draw
func (c *Canvas) sweep() {
	for text, g := range c.glyphs {
		if !g.used {
			c.release(g.img)
			delete(c.glyphs, text)
			continue
		}
		g.used = false
	}
}

func (c *Canvas) Size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(clr color.Color) {
	c.target.Fill(clr)
}

func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	ebitenutil.DrawRect(c.target, float64(x), float64(y), float64(w), float64(h), clr)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1, width int, clr color.Color) {
	vector.StrokeLine(c.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, false)
}

func (c *Canvas) DrawText(text string, x, y int, align render.Align, clr color.Color) {
	if text == "" {
		return
	}
	g, ok := c.glyphs[text]
	if !ok {
		w, h := textSize(text, 1)
		g = &glyph{img: ebiten.NewImage(w, h)}
		ebitenutil.DebugPrint(g.img, text)
		c.glyphs[text] = g
	}
	g.used = true

	w, h := textSize(text, c.textScale)
	if align == render.AlignCenter {
		x -= w / 2
		y -= h / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(c.textScale), float64(c.textScale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	c.target.DrawImage(g.img, op)
}

// textSize returns the pixel size of text in the debug font at scale
func textSize(text string, scale int) (w, h int) {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > cols {
			cols = n
		}
	}
	return cols * glyphW * scale, len(lines) * glyphH * scale
}
