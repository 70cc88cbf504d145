// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Playing is the main gameplay scene. It owns the paddles, the ball and the
// match for one game; every point rebuilds the entities from scratch.
type Playing struct {
	ctx           *scene.Context
	match         *system.Match
	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	court         entity.Court
	speeds        config.SpeedPreset

	left  *entity.Paddle
	right *entity.Paddle
	ball  *entity.Ball

	// Frames left before the ball starts moving in a new point
	waitFrames int
}

// New creates a new Playing scene for the given difficulty
func New(ctx *scene.Context, difficulty entity.Difficulty) *Playing {
	settings := ctx.Settings
	return &Playing{
		ctx:           ctx,
		match:         system.NewMatch(difficulty),
		physicsSystem: system.NewPhysicsSystem(ctx.Sound, settings.Audio.Volume),
		inputSystem:   system.NewInputSystem(ctx.Bindings),
		court:         settings.CourtGeometry(),
		speeds:        settings.Speeds(difficulty),
	}
}

// Screen implements scene.Scene
func (p *Playing) Screen() state.Screen {
	return state.ScreenPlaying
}

// OnEnter starts the first point (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.ctx.Log.Info("game started",
		zap.Stringer("difficulty", p.match.Difficulty),
		zap.Int("paddleSpeed", p.speeds.PaddleSpeed),
		zap.Int("ballSpeed", p.speeds.BallSpeed),
	)
	if err := p.startPoint(); err != nil {
		p.ctx.Log.Error("failed to start first point", zap.Error(err))
	}
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.ctx.Log.Info("game left",
		zap.Stringer("score", p.match.Score),
		zap.Int("points", p.match.PointsPlayed),
		zap.Int("longestRally", p.match.LongestRally),
	)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if !p.match.InProgress() {
		if p.ctx.Input.IsJustPressed(system.KeySpace) {
			if err := p.startPoint(); err != nil {
				return nil, fmt.Errorf("playing: %w", err)
			}
		}
		return nil, nil
	}

	if p.waitFrames > 0 {
		p.waitFrames--
		return nil, nil
	}

	input := p.inputSystem.GetInput(p.ctx.Input)
	res := p.physicsSystem.Step(p.left, p.right, p.ball, input)

	if res.Hit {
		if err := p.match.RecordHit(); err != nil {
			return nil, fmt.Errorf("playing: %w", err)
		}
	}

	if res.PointOver {
		if err := p.match.EndPoint(res.Winner); err != nil {
			return nil, fmt.Errorf("playing: %w", err)
		}
		p.ctx.PlayCue(system.CueEnd)
		p.ctx.Log.Info("point won",
			zap.Stringer("winner", res.Winner),
			zap.Int("rally", p.match.LastRally),
			zap.Stringer("score", p.match.Score),
		)
	}

	return nil, nil // nil = stay on this scene
}

// startPoint respawns paddles and ball and starts the next point
func (p *Playing) startPoint() error {
	if err := p.match.StartPoint(); err != nil {
		return fmt.Errorf("start point: %w", err)
	}

	p.left = entity.NewPaddle(entity.SideLeft, p.court, p.speeds.PaddleSpeed)
	p.right = entity.NewPaddle(entity.SideRight, p.court, p.speeds.PaddleSpeed)
	p.ball = entity.NewBall(p.court, p.speeds.BallSpeed, p.ctx.Rand)

	p.ctx.PlayCue(system.CueStart)
	p.waitFrames = p.ctx.Settings.WaitFrames()

	p.ctx.Log.Debug("point started",
		zap.Int("point", p.match.PointsPlayed+1),
		zap.Int("ballY", p.ball.Y),
		zap.Int("vx", p.ball.Velocity.X),
		zap.Int("vy", p.ball.Velocity.Y),
	)
	return nil
}

// Draw renders the court, and the rally summary once a point has ended
func (p *Playing) Draw(c render.Canvas) {
	pal := p.ctx.Palette
	render.DrawCourt(c, pal.Background, pal.Foreground, p.ctx.Settings.Court.NetWidth, p.left, p.right, p.ball)

	if p.match.InProgress() || p.match.PointsPlayed == 0 {
		return
	}

	w, h := c.Size()
	y := h - p.ctx.Settings.UI.Offset
	c.DrawText(fmt.Sprintf("RALLY LENGTH: %d", p.match.LastRally), 3*w/4, y, render.AlignCenter, pal.Foreground)
	c.DrawText(p.match.Score.String(), w/4, y, render.AlignCenter, pal.Foreground)
}

// Match returns the match state (for testing and diagnostics)
func (p *Playing) Match() *system.Match {
	return p.match
}
