package system

import "strings"

// Key is a front-end independent key identifier
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyI
	KeyK
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	Key1
	Key2
	Key3
)

// AllKeys lists every key the game reads, for adapters that need to poll them
var AllKeys = []Key{KeyW, KeyS, KeyI, KeyK, KeyUp, KeyDown, KeySpace, KeyEscape, Key1, Key2, Key3}

// String returns the label shown in the controls menu
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyI:
		return "I"
	case KeyK:
		return "K"
	case KeyUp:
		return "UP"
	case KeyDown:
		return "DOWN"
	case KeySpace:
		return "SPACE"
	case KeyEscape:
		return "ESC"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	default:
		return "?"
	}
}

// Input is the per-frame keyboard snapshot supplied by a front-end.
// IsPressed reports held keys; IsJustPressed reports keys that went down this frame.
type Input interface {
	IsPressed(k Key) bool
	IsJustPressed(k Key) bool
	// CloseRequested reports that the window or terminal asked to quit
	CloseRequested() bool
}

// PaddleBindings maps keys to one paddle's movement. Any listed key triggers the move.
type PaddleBindings struct {
	Up   []Key
	Down []Key
}

// Bindings holds the key bindings for both paddles
type Bindings struct {
	Left  PaddleBindings
	Right PaddleBindings
}

// DefaultBindings returns W/S for the left paddle and I/Up, K/Down for the right one
func DefaultBindings() Bindings {
	return Bindings{
		Left:  PaddleBindings{Up: []Key{KeyW}, Down: []Key{KeyS}},
		Right: PaddleBindings{Up: []Key{KeyI, KeyUp}, Down: []Key{KeyK, KeyDown}},
	}
}

// Label formats keys for display, e.g. "I / UP"
func Label(keys []Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, " / ")
}

// PaddleCommand is the movement requested for one paddle this frame
type PaddleCommand int

const (
	CommandNone PaddleCommand = iota
	CommandUp
	CommandDown
)

// InputState holds the paddle commands read for one frame
type InputState struct {
	Left  PaddleCommand
	Right PaddleCommand
}

// InputSystem turns held keys into paddle commands
type InputSystem struct {
	bindings Bindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings Bindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// Bindings returns the key bindings in use
func (s *InputSystem) Bindings() Bindings {
	return s.bindings
}

// GetInput reads the current paddle commands from held keys
func (s *InputSystem) GetInput(in Input) InputState {
	return InputState{
		Left:  command(in, s.bindings.Left),
		Right: command(in, s.bindings.Right),
	}
}

// command gives up priority over down when both are held
func command(in Input, b PaddleBindings) PaddleCommand {
	if anyPressed(in, b.Up) {
		return CommandUp
	}
	if anyPressed(in, b.Down) {
		return CommandDown
	}
	return CommandNone
}

func anyPressed(in Input, keys []Key) bool {
	for _, k := range keys {
		if in.IsPressed(k) {
			return true
		}
	}
	return false
}
