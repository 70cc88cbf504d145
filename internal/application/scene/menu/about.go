package menu

import (
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
)

// About shows the project link and opens it in a browser on request
type About struct {
	pacer
}

// NewAbout creates the about screen
func NewAbout(ctx *scene.Context) *About {
	return &About{pacer{ctx: ctx}}
}

// Screen implements scene.Scene
func (a *About) Screen() state.Screen {
	return state.ScreenAbout
}

// OnEnter implements scene.Scene
func (a *About) OnEnter() {
	a.enter(a.Screen())
}

// OnExit implements scene.Scene
func (a *About) OnExit() {}

// Update implements scene.Scene
func (a *About) Update(_ float64) (scene.Scene, error) {
	if !a.ready() {
		return nil, nil
	}
	if selection(a.ctx.Input, 1) == 1 {
		a.open()
	}
	return nil, nil
}

func (a *About) open() {
	url := a.ctx.Settings.About.URL
	if a.ctx.OpenURL == nil {
		a.ctx.Log.Warn("no browser opener configured", zap.String("url", url))
		return
	}
	if err := a.ctx.OpenURL(url); err != nil {
		a.ctx.Log.Warn("failed to open link", zap.String("url", url), zap.Error(err))
		return
	}
	a.ctx.Log.Info("opened link", zap.String("url", url))
}

// Draw implements scene.Scene
func (a *About) Draw(c render.Canvas) {
	drawHeader(c, a.ctx, "ABOUT")
	drawOptions(c, a.ctx, []string{a.ctx.Settings.About.Link})
}
