package config

import (
	"time"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Settings is the root config for settings.json
type Settings struct {
	Display    DisplayConfig     `json:"display" toml:"display"`
	Court      CourtConfig       `json:"court" toml:"court"`
	Difficulty DifficultyPresets `json:"difficulty" toml:"difficulty"`
	UI         UIConfig          `json:"ui" toml:"ui"`
	Colors     ColorConfig       `json:"colors" toml:"colors"`
	Timing     TimingConfig      `json:"timing" toml:"timing"`
	Audio      AudioConfig       `json:"audio" toml:"audio"`
	Terminal   TerminalConfig    `json:"terminal" toml:"terminal"`
	About      AboutConfig       `json:"about" toml:"about"`
}

type DisplayConfig struct {
	Title        string `json:"title" toml:"title"`
	ScreenWidth  int    `json:"screenWidth" toml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" toml:"screenHeight"`
	Scale        int    `json:"scale" toml:"scale"`
	Framerate    int    `json:"framerate" toml:"framerate"`
}

type CourtConfig struct {
	PaddleWidth  int `json:"paddleWidth" toml:"paddleWidth"`
	PaddleHeight int `json:"paddleHeight" toml:"paddleHeight"`
	BallSize     int `json:"ballSize" toml:"ballSize"`
	Offset       int `json:"offset" toml:"offset"` // Side wall to paddle center
	NetWidth     int `json:"netWidth" toml:"netWidth"`
}

// SpeedPreset pairs paddle and ball speeds (pixels per tick)
type SpeedPreset struct {
	PaddleSpeed int `json:"paddleSpeed" toml:"paddleSpeed"`
	BallSpeed   int `json:"ballSpeed" toml:"ballSpeed"`
}

type DifficultyPresets struct {
	Standard SpeedPreset `json:"standard" toml:"standard"`
	Hard     SpeedPreset `json:"hard" toml:"hard"`
}

type UIConfig struct {
	Offset    int `json:"offset" toml:"offset"`       // Line spacing and margin (pixels)
	Indent    int `json:"indent" toml:"indent"`       // Option text column, in multiples of Offset
	TextScale int `json:"textScale" toml:"textScale"` // Debug font magnification
}

type ColorConfig struct {
	Background string `json:"background" toml:"background"`
	Foreground string `json:"foreground" toml:"foreground"`
}

type TimingConfig struct {
	WaitMS int `json:"waitMs" toml:"waitMs"` // Pause after menu transitions and point starts
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled" toml:"enabled"`
	Volume     float64 `json:"volume" toml:"volume"`
	SampleRate int     `json:"sampleRate" toml:"sampleRate"`
}

type TerminalConfig struct {
	HoldMS int `json:"holdMs" toml:"holdMs"` // How long a key event counts as held
}

type AboutConfig struct {
	URL  string `json:"url" toml:"url"`
	Link string `json:"link" toml:"link"`
}

// CourtGeometry converts the court settings into entity geometry
func (s *Settings) CourtGeometry() entity.Court {
	return entity.Court{
		Width:        s.Display.ScreenWidth,
		Height:       s.Display.ScreenHeight,
		PaddleWidth:  s.Court.PaddleWidth,
		PaddleHeight: s.Court.PaddleHeight,
		BallSize:     s.Court.BallSize,
		Offset:       s.Court.Offset,
	}
}

// Speeds returns the speed preset for a difficulty.
// Unknown difficulties fall back to standard.
func (s *Settings) Speeds(d entity.Difficulty) SpeedPreset {
	if d == entity.DifficultyHard {
		return s.Difficulty.Hard
	}
	return s.Difficulty.Standard
}

// WaitFrames converts the configured wait into whole frames
func (s *Settings) WaitFrames() int {
	if s.Display.Framerate <= 0 {
		return 0
	}
	return s.Timing.WaitMS * s.Display.Framerate / 1000
}

// HoldDuration returns the terminal key hold window
func (s *Settings) HoldDuration() time.Duration {
	return time.Duration(s.Terminal.HoldMS) * time.Millisecond
}
