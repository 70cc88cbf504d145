package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the settings for values the game cannot run with.
// All problems are reported together.
func (s *Settings) Validate() error {
	var err error

	positive := func(name string, v int) {
		if v <= 0 {
			err = multierr.Append(err, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("display.screenWidth", s.Display.ScreenWidth)
	positive("display.screenHeight", s.Display.ScreenHeight)
	positive("display.scale", s.Display.Scale)
	positive("display.framerate", s.Display.Framerate)
	positive("court.paddleWidth", s.Court.PaddleWidth)
	positive("court.paddleHeight", s.Court.PaddleHeight)
	positive("court.ballSize", s.Court.BallSize)
	positive("court.offset", s.Court.Offset)
	positive("court.netWidth", s.Court.NetWidth)
	positive("ui.offset", s.UI.Offset)
	positive("ui.textScale", s.UI.TextScale)

	// Hit repositioning places the ball at offset + paddleWidth/2, which is
	// only flush with the paddle face when the width divides evenly.
	if s.Court.PaddleWidth%2 != 0 {
		err = multierr.Append(err, fmt.Errorf("court.paddleWidth must be even, got %d", s.Court.PaddleWidth))
	}
	if s.Court.PaddleHeight > s.Display.ScreenHeight {
		err = multierr.Append(err, fmt.Errorf("court.paddleHeight %d exceeds screen height %d", s.Court.PaddleHeight, s.Display.ScreenHeight))
	}
	if s.Court.Offset*2 >= s.Display.ScreenWidth {
		err = multierr.Append(err, fmt.Errorf("court.offset %d leaves no room between paddles", s.Court.Offset))
	}

	for name, preset := range map[string]SpeedPreset{"standard": s.Difficulty.Standard, "hard": s.Difficulty.Hard} {
		positive("difficulty."+name+".paddleSpeed", preset.PaddleSpeed)
		positive("difficulty."+name+".ballSpeed", preset.BallSpeed)
		// A faster ball could step over a paddle without ever overlapping it
		if limit := s.Court.PaddleWidth + s.Court.BallSize; preset.BallSpeed >= limit {
			err = multierr.Append(err, fmt.Errorf("difficulty.%s.ballSpeed %d must be below %d", name, preset.BallSpeed, limit))
		}
	}

	if s.Timing.WaitMS < 0 {
		err = multierr.Append(err, fmt.Errorf("timing.waitMs must not be negative, got %d", s.Timing.WaitMS))
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		err = multierr.Append(err, fmt.Errorf("audio.volume must be within [0, 1], got %g", s.Audio.Volume))
	}
	if s.Audio.Enabled {
		positive("audio.sampleRate", s.Audio.SampleRate)
	}
	if s.Terminal.HoldMS < 0 {
		err = multierr.Append(err, fmt.Errorf("terminal.holdMs must not be negative, got %d", s.Terminal.HoldMS))
	}

	if _, cerr := ParseHexColor(s.Colors.Background); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("colors.background: %w", cerr))
	}
	if _, cerr := ParseHexColor(s.Colors.Foreground); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("colors.foreground: %w", cerr))
	}

	return err
}
