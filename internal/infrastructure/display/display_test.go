package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/application/scene/scenetest"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

type fakeLoop struct {
	err     error
	updates int
}

func (f *fakeLoop) Update() error {
	f.updates++
	return f.err
}

func (f *fakeLoop) Draw(render.Canvas) {}

func TestKeyMap_CoversAllKeys(t *testing.T) {
	seen := map[ebiten.Key]system.Key{}
	for _, k := range system.AllKeys {
		ek, ok := keyMap[k]
		assert.True(t, ok, "key %s not mapped", k)
		if prev, dup := seen[ek]; dup {
			t.Errorf("%s and %s map to the same ebiten key", prev, k)
		}
		seen[ek] = k
	}
}

func TestRunner_Update(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"running", nil, nil},
		{"quit terminates", game.ErrQuit, ebiten.Termination},
		{"failure propagates", assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := &fakeLoop{err: tt.err}
			r := NewRunner(loop, scenetest.Settings())

			err := r.Update()

			assert.Equal(t, 1, loop.updates)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRunner_Layout(t *testing.T) {
	r := NewRunner(&fakeLoop{}, scenetest.Settings())

	w, h := r.Layout(1920, 1080)

	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestTextSize(t *testing.T) {
	w, h := textSize("PONG", 3)
	assert.Equal(t, 4*6*3, w)
	assert.Equal(t, 16*3, h)

	w, h = textSize("AB\nCDEF", 1)
	assert.Equal(t, 24, w)
	assert.Equal(t, 32, h)
}

func TestNewCanvas_ClampsScale(t *testing.T) {
	assert.Equal(t, 1, NewCanvas(0).textScale)
	assert.Equal(t, 3, NewCanvas(3).textScale)
}

func TestCanvas_SetTargetReleasesStaleText(t *testing.T) {
	c := NewCanvas(1)
	released := 0
	c.release = func(*ebiten.Image) { released++ }
	c.glyphs["SCORE 1"] = &glyph{used: true}
	c.glyphs["SCORE 0"] = &glyph{}

	c.SetTarget(nil)

	assert.Equal(t, 1, released)
	assert.Contains(t, c.glyphs, "SCORE 1")
	assert.NotContains(t, c.glyphs, "SCORE 0")
	assert.False(t, c.glyphs["SCORE 1"].used)

	// Not drawn during the next frame either
	c.SetTarget(nil)

	assert.Equal(t, 2, released)
	assert.Empty(t, c.glyphs)
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "Pong", caption("PONG"))
	assert.Equal(t, "Pong Deluxe", caption("pong deluxe"))
}

func TestIcons(t *testing.T) {
	p := config.Palette{
		Background: color.RGBA{A: 0xff},
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}

	imgs := icons(p)

	require.Len(t, imgs, len(iconSizes))
	for i, img := range imgs {
		size := iconSizes[i]
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

		unit := size / 8
		assert.Equal(t, p.Background, img.At(0, 0), "corner")
		assert.Equal(t, p.Foreground, img.At(size/2, size/2), "ball")
		assert.Equal(t, p.Foreground, img.At(unit, size/2), "left paddle")
		assert.Equal(t, p.Foreground, img.At(size-2*unit, size/2), "right paddle")
		assert.Equal(t, p.Background, img.At(size/2, unit), "court")
	}
}

// Compile-time interface checks
var (
	_ render.Canvas = (*Canvas)(nil)
	_ system.Input  = Keyboard{}
	_ ebiten.Game   = (*Runner)(nil)
	_ Loop          = (*game.Game)(nil)
)
