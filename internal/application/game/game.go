// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
)

// ErrQuit is returned from Update when the player closes the game
var ErrQuit = errors.New("quit requested")

// Game is the single dispatch loop over scenes. Front-ends call Update once
// per tick and Draw once per frame.
type Game struct {
	current scene.Scene
	home    func() scene.Scene
	input   system.Input
	log     *zap.Logger
	dt      float64
}

// New creates a new Game with the given initial scene.
// home builds the main menu that escape returns to.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, home func() scene.Scene, input system.Input, log *zap.Logger, framerate int) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	dt := 1.0 / 60.0
	if framerate > 0 {
		dt = 1.0 / float64(framerate)
	}
	g := &Game{
		current: initial,
		home:    home,
		input:   input,
		log:     log,
		dt:      dt,
	}
	g.log.Info("scene entered", zap.Stringer("screen", initial.Screen()))
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Escape leaves any screen other than the main menu for a fresh main menu.
func (g *Game) Update() error {
	if g.input.CloseRequested() {
		return ErrQuit
	}

	if g.input.IsJustPressed(system.KeyEscape) && g.current.Screen() != state.ScreenMain {
		g.switchTo(g.home())
		return nil
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.switchTo(next)
	}

	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.log.Info("scene changed",
		zap.Stringer("from", g.current.Screen()),
		zap.Stringer("to", next.Screen()),
	)
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw renders the current scene
func (g *Game) Draw(c render.Canvas) {
	g.current.Draw(c)
}

// Screen returns the screen currently shown
func (g *Game) Screen() state.Screen {
	return g.current.Screen()
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
