package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/render"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// Loop is the frame-driven game the terminal runs
type Loop interface {
	Update() error
	Draw(c render.Canvas)
}

// Run drives loop at the configured frame rate until it quits or ctx is done.
// The caller owns screen: Init before, Fini after.
func Run(ctx context.Context, screen tcell.Screen, loop Loop, kb *Keyboard, settings *config.Settings) error {
	canvas := NewCanvas(screen, settings.Display.ScreenWidth, settings.Display.ScreenHeight)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil { // Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	fps := settings.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			kb.HandleEvent(ev)

		case <-ticker.C:
			err := loop.Update()
			kb.EndFrame()
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}

			screen.Clear()
			loop.Draw(canvas)
			screen.Show()
		}
	}
}
