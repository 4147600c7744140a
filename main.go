package main

import (
	"flag"
	"os"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/loop"
	"gridsnake/ui"
	"gridsnake/ui/sound"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	mute := flag.Bool("mute", false, "Disable sound cues")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	cfg, err := flags.Resolve()
	if err != nil {
		logger.Error("config", zap.Error(err))
		os.Exit(2)
	}

	width, height := game.CanvasSize(cfg)
	rl.InitWindow(int32(width), int32(height), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	if !rl.IsWindowReady() {
		logger.Error("window", zap.Error(game.ErrNoRenderer))
		os.Exit(1)
	}

	opts := []game.Option{game.WithLogger(logger)}
	if !*mute {
		cues, err := sound.NewCues(logger)
		if err != nil {
			logger.Warn("sound disabled", zap.Error(err))
		}
		defer cues.Close()
		opts = append(opts, game.WithEventHandler(cues.Observe))
	}
	if *autopilot {
		pilot := ai.NewAutopilot(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))), ai.WithLogger(logger))
		opts = append(opts, game.WithPilot(pilot), game.WithEventHandler(pilot.Observe))
	}

	frames := loop.NewFrameQueue()
	g, err := game.NewGame(cfg, ui.NewRenderer(), frames, opts...)
	if err != nil {
		logger.Error("new game", zap.Error(err))
		os.Exit(1)
	}

	g.Start()
	for !rl.WindowShouldClose() {
		for _, key := range ui.PressedKeys() {
			g.HandleKey(key)
		}
		if *autopilot && g.IsGameOver() {
			g.Reset()
		}

		rl.BeginDrawing()
		frames.Flush(time.Now())
		if g.Paused() {
			// the loop skips rendering while paused; keep the frozen board visible
			g.Render()
		}
		rl.EndDrawing()
	}
	g.Stop()

	logger.Info("session finished", zap.Object("stats", g.Stats()))
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
