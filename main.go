package main

import (
	"errors"
	"flag"
	"log"

	"github.com/alprun/alprun/config"
	"github.com/alprun/alprun/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	debug := flag.Bool("debug", false, "draw the debug overlay")
	watch := flag.Bool("watch", false, "respawn entities when their prefab changes on disk")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *levelName
		case "log-level":
			cfg.Log.Level = *logLevel
		case "debug":
			cfg.Debug = *debug
		case "watch":
			cfg.WatchPrefabs = *watch
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.Init(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, NewKeyboard())
	if err != nil {
		logger.Fatalw("start game", "error", err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warnw("shutdown", "error", err)
		}
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorw("game exited", "error", err)
	}
}
