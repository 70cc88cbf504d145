package menu

import (
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
)

const mainHeader = "BY Karsten Economou"

var mainOptions = []string{"PLAY", "CONTROLS", "ABOUT"}

// Main is the title screen
type Main struct {
	pacer
}

// NewMain creates the main menu
func NewMain(ctx *scene.Context) *Main {
	return &Main{pacer{ctx: ctx}}
}

// Screen implements scene.Scene
func (m *Main) Screen() state.Screen {
	return state.ScreenMain
}

// OnEnter implements scene.Scene
func (m *Main) OnEnter() {
	m.enter(m.Screen())
}

// OnExit implements scene.Scene
func (m *Main) OnExit() {}

// Update opens the selected menu (implements scene.Scene)
func (m *Main) Update(_ float64) (scene.Scene, error) {
	if !m.ready() {
		return nil, nil
	}
	switch selection(m.ctx.Input, len(mainOptions)) {
	case 1:
		return NewDifficulty(m.ctx), nil
	case 2:
		return NewControls(m.ctx), nil
	case 3:
		return NewAbout(m.ctx), nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (m *Main) Draw(c render.Canvas) {
	drawHeader(c, m.ctx, mainHeader)
	drawOptions(c, m.ctx, mainOptions)
}
