package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"diner/internal/config"
	"diner/internal/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "diner.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()
	game.SetLogger(logger)

	return game.RunDesktop(game.DesktopOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Seed:   cfg.Game.Seed,
		Audio:  cfg.Audio.Enabled,
		Tuning: game.Tuning{
			CustomerSpawnBase: cfg.Game.CustomerSpawnBase,
			CustomerWaitTime:  cfg.Game.CustomerWaitTime,
			StoveCookTime:     cfg.Game.StoveCookTime,
		},
	})
}

func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = true
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if lc.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}
