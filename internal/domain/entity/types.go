package entity

import "fmt"

// Side identifies one half of the court
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Difficulty selects the paddle and ball speed preset for a game
type Difficulty int

const (
	DifficultyStandard Difficulty = iota
	DifficultyHard
)

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyStandard:
		return "standard"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Score holds points won per side
type Score struct {
	Left  int
	Right int
}

// Add awards one point to the given side
func (s *Score) Add(side Side) {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	}
}

// Get returns the points won by the given side
func (s Score) Get(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Total returns the number of points played
func (s Score) Total() int {
	return s.Left + s.Right
}

// String formats the score as "left - right"
func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Left, s.Right)
}

// Court describes the playfield geometry shared by all entities.
type Court struct {
	Width        int
	Height       int
	PaddleWidth  int
	PaddleHeight int
	BallSize     int
	Offset       int // Distance from each side wall to the paddle center
}

// Sprite is the drawable and updatable capability shared by paddles and balls.
// The set of implementations is closed: only *Paddle and *Ball.
type Sprite interface {
	Bounds() Rect
	Update()
	isSprite()
}
