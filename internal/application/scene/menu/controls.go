package menu

import (
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
)

// controlSection is one category of the controls listing
type controlSection struct {
	Category string
	Lines    []string
}

// controlSections builds the listing from the active key bindings
func controlSections(b system.Bindings) []controlSection {
	return []controlSection{
		{"LEFT PADDLE", []string{
			"MOVE UP: " + system.Label(b.Left.Up),
			"MOVE DOWN: " + system.Label(b.Left.Down),
		}},
		{"RIGHT PADDLE", []string{
			"MOVE UP: " + system.Label(b.Right.Up),
			"MOVE DOWN: " + system.Label(b.Right.Down),
		}},
		{"MENUS", []string{
			"MAIN MENU: " + system.KeyEscape.String(),
			"NEW POINT: " + system.KeySpace.String(),
		}},
	}
}

// Controls lists the key bindings. It has no options; escape leaves it.
type Controls struct {
	pacer
	sections []controlSection
}

// NewControls creates the controls screen
func NewControls(ctx *scene.Context) *Controls {
	return &Controls{
		pacer:    pacer{ctx: ctx},
		sections: controlSections(ctx.Bindings),
	}
}

// Screen implements scene.Scene
func (c *Controls) Screen() state.Screen {
	return state.ScreenControls
}

// OnEnter implements scene.Scene
func (c *Controls) OnEnter() {
	c.enter(c.Screen())
}

// OnExit implements scene.Scene
func (c *Controls) OnExit() {}

// Update implements scene.Scene
func (c *Controls) Update(_ float64) (scene.Scene, error) {
	c.ready()
	return nil, nil
}

// Draw implements scene.Scene
func (c *Controls) Draw(cv render.Canvas) {
	drawHeader(cv, c.ctx, "CONTROLS")

	off := c.ctx.Settings.UI.Offset
	indent := c.ctx.Settings.UI.Indent * off
	fg := c.ctx.Palette.Foreground

	row := 3
	for _, s := range c.sections {
		cv.DrawText(s.Category, off, row*off, render.AlignLeft, fg)
		for j, line := range s.Lines {
			cv.DrawText(line, indent, (row+1+j)*off, render.AlignLeft, fg)
		}
		row += 1 + len(s.Lines)
	}
}
