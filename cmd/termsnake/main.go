// Command termsnake plays the game in a terminal
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/loop"
	"gridsnake/ui/sound"
	"gridsnake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const frameRate = 60

type options struct {
	autopilot bool
	mute      bool
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	var opts options
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the Q-learning agent play")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound cues")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	logger, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, opts, logger); err != nil {
		logger.Error("termsnake", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs to path, or nowhere: the screen owns stdout and stderr
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func run(cfg config.Config, opts options, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrapf(game.ErrNoRenderer, "open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return errors.Wrapf(game.ErrNoRenderer, "init terminal: %v", err)
	}
	defer screen.Fini()

	width, height := game.CanvasSize(cfg)
	cols, rows := terminal.ScreenSize(width, height, cfg.CellSize)
	if w, h := screen.Size(); w < cols || h < rows {
		logger.Warn("terminal too small", zap.Int("cols", w), zap.Int("rows", h), zap.Int("need_cols", cols), zap.Int("need_rows", rows))
	}

	gameOpts := []game.Option{game.WithLogger(logger)}
	if !opts.mute {
		cues, err := sound.NewCues(logger)
		if err != nil {
			logger.Warn("sound disabled", zap.Error(err))
		}
		defer cues.Close()
		gameOpts = append(gameOpts, game.WithEventHandler(cues.Observe))
	}
	if opts.autopilot {
		pilot := ai.NewAutopilot(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))), ai.WithLogger(logger))
		gameOpts = append(gameOpts, game.WithPilot(pilot), game.WithEventHandler(pilot.Observe))
	}

	canvas := terminal.NewCanvas(screen, cfg.CellSize)
	frames := loop.NewFrameQueue()
	g, err := game.NewGame(cfg, canvas, frames, gameOpts...)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	g.Start()
	defer g.Stop()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if terminal.IsQuit(ev) {
					logger.Info("session finished", zap.Object("stats", g.Stats()))
					return nil
				}
				g.HandleKey(terminal.KeyName(ev))
			case *tcell.EventResize:
				screen.Sync()
				g.Render()
			}
		case now := <-ticker.C:
			if opts.autopilot && g.IsGameOver() {
				g.Reset()
			}
			frames.Flush(now)
			if g.Paused() {
				g.Render()
			}
			canvas.Show()
		}
	}
}
