// Package menu provides the numbered-option menu screens.
//
// Every menu shares one layout: the title on the first row, a header on the
// second, then numbered options (or control listings) one row apart.
// Rows and the option column are multiples of the UI offset.
package menu

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
)

// optionKeys selects option 1, 2 and 3
var optionKeys = []system.Key{system.Key1, system.Key2, system.Key3}

// pacer plays the interact cue on entry and holds input back for the wait period
type pacer struct {
	ctx  *scene.Context
	wait int
}

func (p *pacer) enter(screen state.Screen) {
	p.ctx.PlayCue(system.CueInteract)
	p.wait = p.ctx.Settings.WaitFrames()
	p.ctx.Log.Debug("menu opened", zap.Stringer("screen", screen), zap.Int("waitFrames", p.wait))
}

// ready counts down the wait and reports whether input may be read this frame
func (p *pacer) ready() bool {
	if p.wait > 0 {
		p.wait--
		return false
	}
	return true
}

// selection returns the 1-based option whose key went down this frame, or 0
func selection(in system.Input, options int) int {
	for i, k := range optionKeys {
		if i >= options {
			break
		}
		if in.IsJustPressed(k) {
			return i + 1
		}
	}
	return 0
}

// drawHeader clears the screen and draws the title and header rows
func drawHeader(c render.Canvas, ctx *scene.Context, header string) {
	w, _ := c.Size()
	off := ctx.Settings.UI.Offset
	fg := ctx.Palette.Foreground

	c.Fill(ctx.Palette.Background)
	c.DrawText(ctx.Settings.Display.Title, w/2, off, render.AlignCenter, fg)
	c.DrawText(header, w/2, 2*off, render.AlignCenter, fg)
}

// drawOptions draws numbered options starting on the third row
func drawOptions(c render.Canvas, ctx *scene.Context, options []string) {
	off := ctx.Settings.UI.Offset
	indent := ctx.Settings.UI.Indent * off
	fg := ctx.Palette.Foreground

	for i, option := range options {
		y := (3 + i) * off
		c.DrawText(fmt.Sprintf("%d.", i+1), off, y, render.AlignLeft, fg)
		c.DrawText(option, indent, y, render.AlignLeft, fg)
	}
}
