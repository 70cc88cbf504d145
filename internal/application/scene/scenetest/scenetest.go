// Package scenetest provides test doubles for scene collaborators.
package scenetest

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Input is a scriptable system.Input
type Input struct {
	Held    map[system.Key]bool
	Pressed map[system.Key]bool
	Closing bool
}

// NewInput creates an input with nothing held
func NewInput() *Input {
	return &Input{Held: map[system.Key]bool{}, Pressed: map[system.Key]bool{}}
}

func (in *Input) IsPressed(k system.Key) bool     { return in.Held[k] }
func (in *Input) IsJustPressed(k system.Key) bool { return in.Pressed[k] }
func (in *Input) CloseRequested() bool            { return in.Closing }

// Press marks k as pressed for the next frame only; call Release after the update
func (in *Input) Press(k system.Key) {
	in.Pressed[k] = true
}

// Release clears all just-pressed keys
func (in *Input) Release() {
	in.Pressed = map[system.Key]bool{}
}

// Sound records played cues
type Sound struct {
	Cues []system.Cue
}

func (s *Sound) Play(cue system.Cue, _ float64) {
	s.Cues = append(s.Cues, cue)
}

// Last returns the most recent cue, or "" if none was played
func (s *Sound) Last() system.Cue {
	if len(s.Cues) == 0 {
		return ""
	}
	return s.Cues[len(s.Cues)-1]
}

// Canvas records drawn text and shapes
type Canvas struct {
	W, H   int
	Texts  []string
	Anchor []image.Point // Anchor of each entry in Texts
	Aligns []render.Align
	Rects  []string
	Lines  int
	Fills  int
}

func (c *Canvas) Size() (int, int) { return c.W, c.H }
func (c *Canvas) Fill(color.Color) { c.Fills++ }
func (c *Canvas) FillRect(x, y, w, h int, _ color.Color) {
	c.Rects = append(c.Rects, fmt.Sprintf("%d,%d %dx%d", x, y, w, h))
}
func (c *Canvas) DrawLine(_, _, _, _, _ int, _ color.Color) { c.Lines++ }
func (c *Canvas) DrawText(text string, x, y int, align render.Align, _ color.Color) {
	c.Texts = append(c.Texts, text)
	c.Anchor = append(c.Anchor, image.Pt(x, y))
	c.Aligns = append(c.Aligns, align)
}

// TextAt returns the anchor of the first text equal to s
func (c *Canvas) TextAt(s string) (image.Point, bool) {
	for i, t := range c.Texts {
		if t == s {
			return c.Anchor[i], true
		}
	}
	return image.Point{}, false
}

// Settings returns settings matching the embedded defaults, scaled down
func Settings() *config.Settings {
	return &config.Settings{
		Display: config.DisplayConfig{Title: "PONG", ScreenWidth: 800, ScreenHeight: 600, Scale: 1, Framerate: 60},
		Court:   config.CourtConfig{PaddleWidth: 10, PaddleHeight: 100, BallSize: 10, Offset: 50, NetWidth: 4},
		Difficulty: config.DifficultyPresets{
			Standard: config.SpeedPreset{PaddleSpeed: 8, BallSpeed: 5},
			Hard:     config.SpeedPreset{PaddleSpeed: 12, BallSpeed: 9},
		},
		UI:       config.UIConfig{Offset: 50, Indent: 2, TextScale: 2},
		Colors:   config.ColorConfig{Background: "#000000", Foreground: "#ffffff"},
		Timing:   config.TimingConfig{WaitMS: 50}, // 3 frames
		Audio:    config.AudioConfig{Enabled: false, Volume: 0.5, SampleRate: 44100},
		Terminal: config.TerminalConfig{HoldMS: 100},
		About:    config.AboutConfig{URL: "https://example.com/pong", Link: "example.com/pong"},
	}
}

// Env bundles a scene context with its test doubles
type Env struct {
	Ctx    *scene.Context
	Input  *Input
	Sound  *Sound
	Opened []string
}

// NewEnv builds a context wired to fresh test doubles
func NewEnv(t *testing.T) *Env {
	t.Helper()
	settings := Settings()
	env := &Env{
		Input: NewInput(),
		Sound: &Sound{},
	}
	env.Ctx = &scene.Context{
		Settings: settings,
		Palette:  settings.Palette(),
		Input:    env.Input,
		Sound:    env.Sound,
		Bindings: system.DefaultBindings(),
		Log:      zaptest.NewLogger(t),
		Rand:     rand.New(rand.NewSource(1)),
		OpenURL: func(url string) error {
			env.Opened = append(env.Opened, url)
			return nil
		},
	}
	return env
}

// Tick runs n updates of s and returns the last non-nil next scene
func Tick(t *testing.T, s scene.Scene, n int) scene.Scene {
	t.Helper()
	var last scene.Scene
	for i := 0; i < n; i++ {
		next, err := s.Update(1.0 / 60.0)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if next != nil {
			last = next
		}
	}
	return last
}
