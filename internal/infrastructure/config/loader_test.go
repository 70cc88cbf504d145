package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/younwookim/pong/internal/domain/entity"
)

const configDir = "../../../cmd/game/configs"

func writeOverride(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "override.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "PONG", cfg.Display.Title)
	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 16, cfg.Court.PaddleWidth)
	assert.Equal(t, 8, cfg.Difficulty.Standard.BallSpeed)
	assert.Equal(t, 12, cfg.Difficulty.Hard.BallSpeed)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoader_EmbeddedSettingsAreValid(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings.json")
}

func TestLoader_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		SettingsFile: &fstest.MapFile{Data: []byte(`{"display": `)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings.json")
}

func TestLoader_LoadWithOverride(t *testing.T) {
	loader := NewLoader(configDir)
	path := writeOverride(t, `
[difficulty.hard]
ballSpeed = 14

[colors]
background = "#102030"
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Difficulty.Hard.BallSpeed)
	assert.Equal(t, 14, cfg.Difficulty.Hard.PaddleSpeed, "keys absent from the override keep their value")
	assert.Equal(t, "#102030", cfg.Colors.Background)
	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
}

func TestLoadOverride_UnknownKey(t *testing.T) {
	loader := NewLoader(configDir)
	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	path := writeOverride(t, `
[display]
fullscreen = true
`)

	err = LoadOverride(path, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.fullscreen")
}

func TestLoadOverride_BadSyntax(t *testing.T) {
	cfg := &Settings{}
	path := writeOverride(t, `[display`)

	err := LoadOverride(path, cfg)
	assert.Error(t, err)
}

func TestLoader_OverrideFailsValidation(t *testing.T) {
	loader := NewLoader(configDir)
	path := writeOverride(t, `
[court]
paddleWidth = 15
`)

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "court.paddleWidth must be even")
}

func TestSettings_ValidateAggregates(t *testing.T) {
	loader := NewLoader(configDir)
	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	cfg.Display.Framerate = 0
	cfg.Difficulty.Standard.BallSpeed = 100
	cfg.Colors.Foreground = "white"
	cfg.Audio.Volume = 2

	err = cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.Contains(t, err.Error(), "display.framerate")
	assert.Contains(t, err.Error(), "difficulty.standard.ballSpeed 100 must be below 32")
	assert.Contains(t, err.Error(), "colors.foreground")
	assert.Contains(t, err.Error(), "audio.volume")
}

func TestSettings_Derived(t *testing.T) {
	loader := NewLoader(configDir)
	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	court := cfg.CourtGeometry()
	assert.Equal(t, entity.Court{
		Width:        1280,
		Height:       720,
		PaddleWidth:  16,
		PaddleHeight: 120,
		BallSize:     16,
		Offset:       60,
	}, court)

	assert.Equal(t, cfg.Difficulty.Standard, cfg.Speeds(entity.DifficultyStandard))
	assert.Equal(t, cfg.Difficulty.Hard, cfg.Speeds(entity.DifficultyHard))
	assert.Equal(t, cfg.Difficulty.Standard, cfg.Speeds(entity.Difficulty(9)))

	assert.Equal(t, 60, cfg.WaitFrames())
	assert.Equal(t, int64(150), cfg.HoldDuration().Milliseconds())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#ffffff", [4]uint8{255, 255, 255, 255}, false},
		{"#1a1a2e", [4]uint8{26, 26, 46, 255}, false},
		{"00000080", [4]uint8{0, 0, 0, 128}, false},
		{"#ffffff80", [4]uint8{255, 255, 255, 128}, false},
		{"#fff", [4]uint8{255, 255, 255, 255}, false},
		{"#f0a", [4]uint8{255, 0, 170, 255}, false},
		{"#ffff", [4]uint8{}, true},
		{"#gggggg", [4]uint8{}, true},
		{"#ffffffzz", [4]uint8{}, true},
		{"", [4]uint8{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [4]uint8{c.R, c.G, c.B, c.A})
		})
	}
}

func TestSettings_Palette(t *testing.T) {
	cfg := &Settings{Colors: ColorConfig{Background: "#000000", Foreground: "#ff0000"}}

	p := cfg.Palette()
	assert.Equal(t, uint8(0), p.Background.R)
	assert.Equal(t, uint8(255), p.Foreground.R)
	assert.Equal(t, uint8(255), p.Foreground.A)
}
