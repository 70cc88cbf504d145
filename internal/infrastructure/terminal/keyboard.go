package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/system"
)

// Keyboard implements system.Input from tcell key events.
// Terminals report presses, never releases, so a key counts as held for the
// hold window after its last event; auto-repeat keeps a held key alive.
// All methods run on the game loop goroutine.
type Keyboard struct {
	hold     time.Duration
	now      func() time.Time
	lastSeen map[system.Key]time.Time
	pressed  map[system.Key]bool // Went down since the last frame
	closing  bool
}

// NewKeyboard creates a keyboard with the given hold window
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[system.Key]time.Time),
		pressed:  make(map[system.Key]bool),
	}
}

// HandleEvent records a tcell event; non-key events are ignored
func (kb *Keyboard) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		kb.press(key.Key(), key.Rune(), key.Modifiers())
	}
}

func (kb *Keyboard) press(k tcell.Key, r rune, mod tcell.ModMask) {
	if k == tcell.KeyCtrlC || k == tcell.KeyCtrlQ || (k == tcell.KeyRune && (r == 'q' || r == 'Q') && mod&tcell.ModCtrl != 0) {
		kb.closing = true
		return
	}

	key, ok := translate(k, r)
	if !ok {
		return
	}
	if !kb.IsPressed(key) {
		kb.pressed[key] = true
	}
	kb.lastSeen[key] = kb.now()
}

// EndFrame clears the just-pressed set; call after each update
func (kb *Keyboard) EndFrame() {
	clear(kb.pressed)
}

func (kb *Keyboard) IsPressed(k system.Key) bool {
	t, ok := kb.lastSeen[k]
	return ok && kb.now().Sub(t) <= kb.hold
}

func (kb *Keyboard) IsJustPressed(k system.Key) bool {
	return kb.pressed[k]
}

func (kb *Keyboard) CloseRequested() bool {
	return kb.closing
}

// translate maps a tcell key to a game key
func translate(k tcell.Key, r rune) (system.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return system.KeyUp, true
	case tcell.KeyDown:
		return system.KeyDown, true
	case tcell.KeyEscape:
		return system.KeyEscape, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return system.KeyW, true
		case 's', 'S':
			return system.KeyS, true
		case 'i', 'I':
			return system.KeyI, true
		case 'k', 'K':
			return system.KeyK, true
		case ' ':
			return system.KeySpace, true
		case '1':
			return system.Key1, true
		case '2':
			return system.Key2, true
		case '3':
			return system.Key3, true
		}
	}
	return 0, false
}
