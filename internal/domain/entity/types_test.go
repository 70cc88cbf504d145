package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestCourt() Court {
	return Court{
		Width:        800,
		Height:       600,
		PaddleWidth:  10,
		PaddleHeight: 100,
		BallSize:     10,
		Offset:       50,
	}
}

func TestSide_String(t *testing.T) {
	tests := []struct {
		side     Side
		expected string
	}{
		{SideLeft, "left"},
		{SideRight, "right"},
		{Side(7), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.side.String())
		})
	}
}

func TestSide_Opponent(t *testing.T) {
	assert.Equal(t, SideRight, SideLeft.Opponent())
	assert.Equal(t, SideLeft, SideRight.Opponent())
}

func TestDifficulty_String(t *testing.T) {
	assert.Equal(t, "standard", DifficultyStandard.String())
	assert.Equal(t, "hard", DifficultyHard.String())
	assert.Equal(t, "unknown", Difficulty(9).String())
}

func TestScore_Add(t *testing.T) {
	var s Score

	s.Add(SideLeft)
	s.Add(SideRight)
	s.Add(SideRight)

	assert.Equal(t, 1, s.Left)
	assert.Equal(t, 2, s.Right)
	assert.Equal(t, 1, s.Get(SideLeft))
	assert.Equal(t, 2, s.Get(SideRight))
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, "1 - 2", s.String())
}

func TestScore_AddUnknownSideIsIgnored(t *testing.T) {
	var s Score
	s.Add(Side(42))

	assert.Equal(t, 0, s.Total())
}

func TestSprite_ClosedSet(t *testing.T) {
	// Compile-time check that both entities implement Sprite
	var _ Sprite = (*Paddle)(nil)
	var _ Sprite = (*Ball)(nil)
}
