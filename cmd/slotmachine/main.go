package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"slotmachine/internal/assets"
	"slotmachine/internal/clock"
	"slotmachine/internal/config"
	"slotmachine/internal/env"
	"slotmachine/internal/game"
	"slotmachine/internal/graphics"
	"slotmachine/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	envErr := env.Load(".env")
	log := logger.New(env.String(env.LogPath, logger.DefaultPath))
	if envErr != nil {
		log.Warnf(".env: %v", envErr)
	}

	cfg, err := config.Load(env.String(env.ConfigPath, config.DefaultPath))
	if err != nil {
		log.Warnf("%v, using defaults", err)
	}
	config.ApplyEnv(&cfg)

	r, err := graphics.New(graphics.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		TargetFPS: cfg.Window.TargetFPS,
	}, log)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	defer r.Close()

	g := game.New(cfg, r, clock.NewSystem(), game.NewRand(cfg.Seed), log, assets.NewResolver(env.String(env.AssetsRoot, "")))
	defer g.Close()
	if err := g.Load(); err != nil {
		log.Errorf("load: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := g.Run(ctx); err != nil {
		log.Infof("stopped: %v", err)
	}
	return 0
}
