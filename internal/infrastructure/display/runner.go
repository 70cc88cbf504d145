package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Loop is the frame-driven game the window runs
type Loop interface {
	Update() error
	Draw(c render.Canvas)
}

// Runner adapts a Loop to ebiten.Game
type Runner struct {
	loop    Loop
	canvas  *Canvas
	screenW int
	screenH int
}

// NewRunner creates a runner with a logical screen of the configured size
func NewRunner(loop Loop, settings *config.Settings) *Runner {
	return &Runner{
		loop:    loop,
		canvas:  NewCanvas(settings.UI.TextScale),
		screenW: settings.Display.ScreenWidth,
		screenH: settings.Display.ScreenHeight,
	}
}

// Update implements ebiten.Game. A quit request ends the run cleanly.
func (r *Runner) Update() error {
	err := r.loop.Update()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.SetTarget(screen)
	r.loop.Draw(r.canvas)
}

// Layout returns the game's logical screen dimensions (implements ebiten.Game)
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenW, r.screenH
}

// Run opens the window and blocks until the game ends
func Run(loop Loop, settings *config.Settings) error {
	d := settings.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(caption(d.Title))
	ebiten.SetWindowIcon(icons(settings.Palette()))
	ebiten.SetTPS(d.Framerate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewRunner(loop, settings)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
