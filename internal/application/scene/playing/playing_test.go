package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/scene/scenetest"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
)

func createTestPlaying(t *testing.T, d entity.Difficulty) (*Playing, *scenetest.Env) {
	env := scenetest.NewEnv(t)
	p := New(env.Ctx, d)
	p.OnEnter()
	return p, env
}

// skipWait runs the frames during which the ball is frozen
func skipWait(t *testing.T, p *Playing) {
	scenetest.Tick(t, p, p.ctx.Settings.WaitFrames())
	require.Equal(t, 0, p.waitFrames)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, env := createTestPlaying(t, entity.DifficultyStandard)

	assert.Equal(t, state.ScreenPlaying, p.Screen())
	assert.True(t, p.Match().InProgress())
	assert.Equal(t, entity.Score{}, p.Match().Score)
	require.NotNil(t, p.ball)
	require.NotNil(t, p.left)
	require.NotNil(t, p.right)
	assert.Equal(t, []system.Cue{system.CueStart}, env.Sound.Cues)
	assert.Equal(t, 3, p.waitFrames)
}

func TestPlaying_DifficultySelectsSpeeds(t *testing.T) {
	std, _ := createTestPlaying(t, entity.DifficultyStandard)
	hard, env := createTestPlaying(t, entity.DifficultyHard)

	assert.Equal(t, 8, std.left.Speed)
	assert.Equal(t, 5, std.ball.Velocity.Speed)
	assert.Equal(t, env.Ctx.Settings.Difficulty.Hard.PaddleSpeed, hard.right.Speed)
	assert.Equal(t, env.Ctx.Settings.Difficulty.Hard.BallSpeed, hard.ball.Velocity.Speed)
}

func TestPlaying_BallFrozenDuringWait(t *testing.T) {
	p, _ := createTestPlaying(t, entity.DifficultyStandard)
	start := p.ball.Bounds()

	scenetest.Tick(t, p, 3)
	assert.Equal(t, start, p.ball.Bounds(), "ball waits before the point starts")

	scenetest.Tick(t, p, 1)
	assert.Equal(t, start.X+p.ball.Velocity.X, p.ball.X)
}

func TestPlaying_PaddleInput(t *testing.T) {
	p, env := createTestPlaying(t, entity.DifficultyStandard)
	skipWait(t, p)
	leftY, rightY := p.left.Y, p.right.Y

	env.Input.Held[system.KeyW] = true
	env.Input.Held[system.KeyK] = true
	scenetest.Tick(t, p, 2)

	assert.Equal(t, leftY-16, p.left.Y)
	assert.Equal(t, rightY+16, p.right.Y)
}

func TestPlaying_RightWinsAndRestart(t *testing.T) {
	p, env := createTestPlaying(t, entity.DifficultyStandard)
	skipWait(t, p)

	// Put the ball just inside the left wall, above the paddle, heading out
	p.ball.X, p.ball.Y = 3, 20
	p.ball.Velocity = entity.Velocity{X: -5, Y: 5, Speed: 5}
	require.NoError(t, p.match.RecordHit())

	scenetest.Tick(t, p, 1)

	m := p.Match()
	assert.False(t, m.InProgress())
	assert.Equal(t, entity.Score{Left: 0, Right: 1}, m.Score)
	assert.Equal(t, 1, m.LastRally)
	assert.Equal(t, system.CueEnd, env.Sound.Last())

	// Ticking is suspended until space
	frozen := p.ball.Bounds()
	scenetest.Tick(t, p, 10)
	assert.Equal(t, frozen, p.ball.Bounds())
	assert.Equal(t, 1, m.Score.Total())

	env.Input.Press(system.KeySpace)
	scenetest.Tick(t, p, 1)
	env.Input.Release()

	assert.True(t, m.InProgress())
	assert.Equal(t, 0, m.RallyLength, "rally resets on new point")
	assert.Equal(t, system.CueStart, env.Sound.Last())
	assert.Equal(t, p.court.Width/2, p.ball.CenterX(), "ball respawned")
	assert.Equal(t, p.court.Height/2, p.left.CenterY(), "paddles respawned")
}

func TestPlaying_SpaceIgnoredDuringPoint(t *testing.T) {
	p, env := createTestPlaying(t, entity.DifficultyStandard)
	skipWait(t, p)
	ball := p.ball

	env.Input.Press(system.KeySpace)
	scenetest.Tick(t, p, 1)

	assert.Same(t, ball, p.ball, "space does not respawn mid point")
}

func TestPlaying_HitCountsRally(t *testing.T) {
	p, env := createTestPlaying(t, entity.DifficultyStandard)
	skipWait(t, p)

	// One tick from overlapping the left paddle face
	p.ball.X, p.ball.Y = p.left.Right()+2, p.left.CenterY()
	p.ball.Velocity = entity.Velocity{X: -5, Y: 5, Speed: 5}

	scenetest.Tick(t, p, 1)

	assert.Equal(t, 1, p.Match().RallyLength)
	assert.Contains(t, env.Sound.Cues, system.CueHit)
	assert.Equal(t, p.court.Offset+p.court.PaddleWidth/2, p.ball.X)

	scenetest.Tick(t, p, 1)
	assert.Equal(t, 1, p.Match().RallyLength, "one hit per return")
}

func TestPlaying_Draw(t *testing.T) {
	p, _ := createTestPlaying(t, entity.DifficultyStandard)
	c := &scenetest.Canvas{W: 800, H: 600}

	p.Draw(c)

	assert.Equal(t, 1, c.Fills)
	assert.Equal(t, 1, c.Lines, "net")
	assert.Len(t, c.Rects, 3, "two paddles and the ball")
	assert.Empty(t, c.Texts, "no summary before the first point ends")
}

func TestPlaying_DrawAfterPoint(t *testing.T) {
	p, _ := createTestPlaying(t, entity.DifficultyStandard)
	skipWait(t, p)
	p.ball.X, p.ball.Y = p.court.Width-p.court.BallSize-2, 20
	p.ball.Velocity = entity.Velocity{X: 5, Y: 5, Speed: 5}
	scenetest.Tick(t, p, 1)
	require.False(t, p.Match().InProgress())

	c := &scenetest.Canvas{W: 800, H: 600}
	p.Draw(c)

	assert.Equal(t, []string{"RALLY LENGTH: 0", "1 - 0"}, c.Texts)
}

func TestPlaying_OnExit(t *testing.T) {
	p, _ := createTestPlaying(t, entity.DifficultyStandard)

	assert.NotPanics(t, func() {
		p.OnExit()
	})
}
