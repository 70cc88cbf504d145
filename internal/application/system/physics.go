package system

import "github.com/younwookim/pong/internal/domain/entity"

// StepResult reports what happened during one simulation tick
type StepResult struct {
	Hit       bool
	Bounced   bool
	PointOver bool
	Winner    entity.Side
}

// PhysicsSystem advances paddles and ball by one tick and resolves collisions
type PhysicsSystem struct {
	sound  SoundPlayer
	volume float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(sound SoundPlayer, volume float64) *PhysicsSystem {
	if sound == nil {
		sound = NopSoundPlayer{}
	}
	return &PhysicsSystem{
		sound:  sound,
		volume: volume,
	}
}

// Step runs one tick: paddle moves, ball advance, paddle hit, wall bounce,
// then the side-wall check. Once PointOver is set the caller must stop stepping.
func (s *PhysicsSystem) Step(left, right *entity.Paddle, ball *entity.Ball, input InputState) StepResult {
	var res StepResult

	ApplyCommand(left, input.Left)
	ApplyCommand(right, input.Right)

	ball.Advance()

	if ball.IsHit(left, right) {
		s.sound.Play(CueHit, s.volume)
		ball.Hit()
		res.Hit = true
	}

	if ball.IsBounced() {
		s.sound.Play(CueBounce, s.volume)
		ball.Bounce()
		res.Bounced = true
	}

	if winner, ok := ball.OutOfBounds(); ok {
		res.PointOver = true
		res.Winner = winner
	}

	return res
}

// ApplyCommand moves a paddle according to a command
func ApplyCommand(p *entity.Paddle, cmd PaddleCommand) {
	switch cmd {
	case CommandUp:
		p.MoveUp()
	case CommandDown:
		p.MoveDown()
	}
}
