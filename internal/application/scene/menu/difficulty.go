package menu

import (
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/scene/playing"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/domain/entity"
)

var difficultyOptions = []string{"STANDARD", "Nadal ON CLAY"}

// Difficulty lets the players pick a speed preset and starts the game
type Difficulty struct {
	pacer
}

// NewDifficulty creates the difficulty select menu
func NewDifficulty(ctx *scene.Context) *Difficulty {
	return &Difficulty{pacer{ctx: ctx}}
}

// Screen implements scene.Scene
func (d *Difficulty) Screen() state.Screen {
	return state.ScreenDifficultySelect
}

// OnEnter implements scene.Scene
func (d *Difficulty) OnEnter() {
	d.enter(d.Screen())
}

// OnExit implements scene.Scene
func (d *Difficulty) OnExit() {}

// Update implements scene.Scene
func (d *Difficulty) Update(_ float64) (scene.Scene, error) {
	if !d.ready() {
		return nil, nil
	}
	switch selection(d.ctx.Input, len(difficultyOptions)) {
	case 1:
		return playing.New(d.ctx, entity.DifficultyStandard), nil
	case 2:
		return playing.New(d.ctx, entity.DifficultyHard), nil
	}
	return nil, nil
}

// Draw implements scene.Scene
func (d *Difficulty) Draw(c render.Canvas) {
	drawHeader(c, d.ctx, "SELECT DIFFICULTY")
	drawOptions(c, d.ctx, difficultyOptions)
}
