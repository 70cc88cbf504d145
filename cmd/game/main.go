package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/scene/menu"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/audio"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/infrastructure/display"
	"github.com/younwookim/pong/internal/infrastructure/logging"
	"github.com/younwookim/pong/internal/infrastructure/terminal"
)

// defaultTerminalLog receives logs in -tui mode, where stderr would corrupt the screen
const defaultTerminalLog = "pong.log"

// options holds the parsed command line
type options struct {
	overridePath string
	logFile      string
	debug        bool
	tui          bool
	seed         int64
}

// frontend presents the game and supplies its keyboard
type frontend interface {
	Input(settings *config.Settings) system.Input
	Run(g *game.Game, settings *config.Settings) error
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.overridePath, "config", "", "TOML file overriding the built-in settings (e.g., -config pong.toml)")
	flag.StringVar(&opts.logFile, "log", "", "Write logs to a rotating file instead of stderr")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.tui, "tui", false, "Play in the terminal instead of a window")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for ball spawns (0 = time based)")
	flag.Parse()

	var fe frontend = windowFrontend{}
	if opts.tui {
		fe = &terminalFrontend{}
	}

	// Deferred cleanup lives in run, so exit only after it returns
	os.Exit(run(opts, fe))
}

// run plays one session and returns the process exit code
func run(opts options, fe frontend) int {
	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Printf("Failed to get config subfs: %v", err)
		return 1
	}
	settings, err := config.NewFSLoader(fsys, "configs").Load(opts.overridePath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	if opts.tui && opts.logFile == "" {
		opts.logFile = defaultTerminalLog
	}
	logger, logCloser := logging.New(logging.Options{Debug: opts.debug, File: opts.logFile})
	defer logCloser.Close()
	defer logger.Sync() //nolint:errcheck

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		zap.Bool("tui", opts.tui),
		zap.String("override", opts.overridePath),
		zap.Int64("seed", opts.seed),
	)

	sound, closeSound := newSoundPlayer(settings, logger)
	defer closeSound()

	keyboard := fe.Input(settings)

	ctx := &scene.Context{
		Settings: settings,
		Palette:  settings.Palette(),
		Input:    keyboard,
		Sound:    sound,
		Bindings: system.DefaultBindings(),
		Log:      logger,
		Rand:     rand.New(rand.NewSource(opts.seed)),
		OpenURL:  openURL,
	}
	home := func() scene.Scene { return menu.NewMain(ctx) }
	g := game.New(home(), home, keyboard, logger, settings.Display.Framerate)

	if err := fe.Run(g, settings); err != nil {
		logger.Error("game ended with error", zap.Error(err))
		return 1
	}
	logger.Info("bye")
	return 0
}

// newSoundPlayer opens the speaker, falling back to silence on failure
func newSoundPlayer(settings *config.Settings, logger *zap.Logger) (system.SoundPlayer, func()) {
	if !settings.Audio.Enabled {
		logger.Info("audio disabled")
		return system.NopSoundPlayer{}, func() {}
	}

	player := audio.NewBeepPlayer(settings.Audio.SampleRate)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("audio initialization failed", zap.Error(err))
		return system.NopSoundPlayer{}, func() {}
	}
	return player, player.Close
}

// windowFrontend plays in an ebiten window
type windowFrontend struct{}

func (windowFrontend) Input(*config.Settings) system.Input { return display.Keyboard{} }

func (windowFrontend) Run(g *game.Game, settings *config.Settings) error {
	return display.Run(g, settings)
}

// terminalFrontend plays in the controlling terminal
type terminalFrontend struct {
	keyboard *terminal.Keyboard
}

func (t *terminalFrontend) Input(settings *config.Settings) system.Input {
	t.keyboard = terminal.NewKeyboard(settings.HoldDuration())
	return t.keyboard
}

func (t *terminalFrontend) Run(g *game.Game, settings *config.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.Run(ctx, screen, g, t.keyboard, settings)
}
