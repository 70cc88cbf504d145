package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pong/internal/application/system"
)

// keyMap translates game keys to ebiten keys
var keyMap = map[system.Key]ebiten.Key{
	system.KeyW:      ebiten.KeyW,
	system.KeyS:      ebiten.KeyS,
	system.KeyI:      ebiten.KeyI,
	system.KeyK:      ebiten.KeyK,
	system.KeyUp:     ebiten.KeyArrowUp,
	system.KeyDown:   ebiten.KeyArrowDown,
	system.KeySpace:  ebiten.KeySpace,
	system.KeyEscape: ebiten.KeyEscape,
	system.Key1:      ebiten.KeyDigit1,
	system.Key2:      ebiten.KeyDigit2,
	system.Key3:      ebiten.KeyDigit3,
}

// Keyboard implements system.Input with ebiten's polled keyboard state
type Keyboard struct{}

func (Keyboard) IsPressed(k system.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (Keyboard) IsJustPressed(k system.Key) bool {
	ek, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

// CloseRequested reports the window close button; requires SetWindowClosingHandled
func (Keyboard) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}
