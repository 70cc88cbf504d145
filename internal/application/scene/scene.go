// Package scene defines the Scene interface for game screens.
//
// Each screen (main menu, difficulty select, controls, about, playing)
// implements the Scene interface to handle its own update logic and rendering.
package scene

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the canvas.
	Draw(c render.Canvas)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()

	// Screen identifies the scene in the menu state machine.
	Screen() state.Screen
}

// Context carries the collaborators every scene needs.
// It is created once at startup and shared by reference.
type Context struct {
	Settings *config.Settings
	Palette  config.Palette
	Input    system.Input
	Sound    system.SoundPlayer
	Bindings system.Bindings
	Log      *zap.Logger
	Rand     *rand.Rand

	// OpenURL opens a link in the user's browser
	OpenURL func(url string) error
}

// PlayCue plays a cue at the configured volume
func (c *Context) PlayCue(cue system.Cue) {
	if c.Sound == nil {
		return
	}
	c.Sound.Play(cue, c.Settings.Audio.Volume)
}
