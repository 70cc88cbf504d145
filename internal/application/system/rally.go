package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/domain/entity"
)

var (
	// ErrPointInProgress is returned when starting a point while one is being played
	ErrPointInProgress = errors.New("point already in progress")
	// ErrNoPointInProgress is returned when recording a hit or result with no point in play
	ErrNoPointInProgress = errors.New("no point in progress")
)

// Match tracks score and rally length for one game.
// It starts in PointEnded with no points played.
type Match struct {
	Difficulty   entity.Difficulty
	Score        entity.Score
	State        state.PointState
	RallyLength  int // Paddle hits in the current point
	LastRally    int // Rally length of the most recently finished point
	LongestRally int
	PointsPlayed int
	LastWinner   entity.Side
}

// NewMatch creates a match with zero score
func NewMatch(d entity.Difficulty) *Match {
	return &Match{
		Difficulty: d,
		State:      state.PointEnded,
	}
}

// StartPoint begins a new point and resets the rally length
func (m *Match) StartPoint() error {
	if m.State == state.PointInProgress {
		return ErrPointInProgress
	}
	m.State = state.PointInProgress
	m.RallyLength = 0
	return nil
}

// RecordHit counts one paddle return in the current point
func (m *Match) RecordHit() error {
	if m.State != state.PointInProgress {
		return fmt.Errorf("record hit: %w", ErrNoPointInProgress)
	}
	m.RallyLength++
	return nil
}

// EndPoint awards the point to winner and ends it
func (m *Match) EndPoint(winner entity.Side) error {
	if m.State != state.PointInProgress {
		return fmt.Errorf("end point: %w", ErrNoPointInProgress)
	}
	m.State = state.PointEnded
	m.Score.Add(winner)
	m.PointsPlayed++
	m.LastWinner = winner
	m.LastRally = m.RallyLength
	if m.RallyLength > m.LongestRally {
		m.LongestRally = m.RallyLength
	}
	return nil
}

// InProgress reports whether a point is being played
func (m *Match) InProgress() bool {
	return m.State == state.PointInProgress
}
