// Package render defines the drawing surface scenes render onto.
//
// Front-ends (the ebiten window and the tcell terminal) implement Canvas;
// scenes only ever see this interface.
package render

import (
	"image/color"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Align selects how DrawText interprets its anchor point
type Align int

const (
	// AlignLeft anchors the text's top-left corner
	AlignLeft Align = iota
	// AlignCenter anchors the text's center
	AlignCenter
)

// Canvas is a frame-buffer surface in logical screen pixels.
// The front-end presents the frame after the scene has drawn.
type Canvas interface {
	Size() (w, h int)
	Fill(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
	DrawLine(x0, y0, x1, y1, width int, c color.Color)
	DrawText(text string, x, y int, align Align, c color.Color)
}

// DrawCourt draws the background, the center net and every sprite, in that order
func DrawCourt(c Canvas, bg, fg color.Color, netWidth int, sprites ...entity.Sprite) {
	w, h := c.Size()
	c.Fill(bg)
	c.DrawLine(w/2, 0, w/2, h, netWidth, fg)
	for _, s := range sprites {
		r := s.Bounds()
		c.FillRect(r.X, r.Y, r.W, r.H, fg)
	}
}
