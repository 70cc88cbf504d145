package state

// Screen identifies which top-level screen is active
type Screen int

const (
	ScreenMain Screen = iota
	ScreenDifficultySelect
	ScreenControls
	ScreenAbout
	ScreenPlaying
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main"
	case ScreenDifficultySelect:
		return "DifficultySelect"
	case ScreenControls:
		return "Controls"
	case ScreenAbout:
		return "About"
	case ScreenPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// PointState is the state of the current point within a game
type PointState int

const (
	PointEnded PointState = iota
	PointInProgress
)

// String returns the string representation of the point state
func (s PointState) String() string {
	switch s {
	case PointEnded:
		return "Ended"
	case PointInProgress:
		return "InProgress"
	default:
		return "Unknown"
	}
}
