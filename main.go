package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/assets"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/logger"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
)

func main() {
	configPath := flag.String("config", "chromatic-rush.yaml", "path to the tuning file (missing file uses defaults)")
	templatesPath := flag.String("templates", "", "path to a pattern library (empty uses the built-in one)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default LOG_LEVEL or info)")
	logFormat := flag.String("log-format", "", "json or console (default LOG_FORMAT or console)")
	profileMode := flag.String("profile", "", "cpu or mem to write a profile in the working directory")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	zlog, err := logger.New(*logLevel, *logFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		zlog.Fatal("unknown profile mode", zap.String("mode", *profileMode))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal("failed to load config", zap.Error(err))
	}

	templates, err := loadTemplates(*templatesPath)
	if err != nil {
		zlog.Fatal("failed to load templates", zap.Error(err))
	}

	var store storage.Store = storage.NewMemoryStore()
	if cfg.Storage.Dir != "" {
		fileStore, err := storage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			zlog.Fatal("failed to open storage", zap.Error(err))
		}
		store = fileStore
	}

	sounds, err := assets.LoadAudio(audio.NewContext(assets.SampleRate), cfg.Assets, zlog)
	if err != nil {
		zlog.Fatal("failed to load sounds", zap.Error(err))
	}
	sprites, err := assets.LoadSprites(cfg.Assets, zlog)
	if err != nil {
		zlog.Fatal("failed to load sprites", zap.Error(err))
	}

	game, err := NewGame(cfg, templates, store, sounds, sprites, zlog)
	if err != nil {
		zlog.Fatal("failed to create game", zap.Error(err))
	}
	defer game.Close()

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("Chromatic Rush")

	if err := ebiten.RunGame(game); err != nil {
		zlog.Error("game stopped", zap.Error(err))
	}
}

func loadTemplates(path string) (*data.Library, error) {
	if path == "" {
		return data.LoadDefault()
	}
	return data.LoadFile(path)
}
