package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/input"
	"github.com/noamm-opencalw/chromatic-rush-game/render"
	"github.com/noamm-opencalw/chromatic-rush-game/session"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
	"github.com/noamm-opencalw/chromatic-rush-game/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg       *config.Game
	templates *data.Library
	store     storage.Store
	sounds    systems.SoundPlayer
	keyboard  *input.Keyboard
	renderer  *render.Renderer
	log       *zap.Logger

	session *session.Session
	hud     *render.HUD
	muted   bool

	lastUpdate time.Time
	showFPS    bool
}

// NewGame creates a new game instance and starts the first run
func NewGame(cfg *config.Game, templates *data.Library, store storage.Store, sounds systems.SoundPlayer,
	sprites render.SpriteSource, log *zap.Logger) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		templates: templates,
		store:     store,
		sounds:    sounds,
		keyboard:  input.NewKeyboard(nil),
		renderer:  render.NewRenderer(sprites, cfg.Physics.GroundY),
		log:       log,
	}
	if err := g.startRun(); err != nil {
		return nil, err
	}
	return g, nil
}

// startRun replaces the current session with a fresh one
func (g *Game) startRun() error {
	if g.session != nil {
		g.hud.Close()
		g.session.Close()
	}

	s, err := session.New(session.Options{
		Config:    g.cfg,
		Templates: g.templates,
		Store:     g.store,
		Sounds:    g.sounds,
		Input:     g.keyboard,
		Log:       g.log,
	})
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	s.Audio().SetMuted(g.muted)
	s.Messages.Add("SPACE jump, DOWN duck, F spray", systems.MessageTypeNormal)

	g.session = s
	g.hud = render.NewHUD(g.cfg.Player.Health, g.cfg.Player.MaxSprayPower)
	g.hud.Initialize(s.World)
	g.lastUpdate = time.Time{}
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / 60.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showFPS = !g.showFPS
	}
	if g.keyboard.MutePressed() {
		g.muted = !g.muted
		g.session.Audio().SetMuted(g.muted)
	}

	if g.session.Over() {
		if g.keyboard.RestartPressed() {
			return g.startRun()
		}
		return nil
	}
	if g.keyboard.PausePressed() {
		g.session.TogglePause()
	}

	// The session clamps long frames
	g.session.Tick(dt)
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session, g.hud)

	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), config.HUDMargin, config.ScreenHeight-24)
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// Close ends the current run
func (g *Game) Close() {
	if g.session == nil {
		return
	}
	g.hud.Close()
	g.session.Close()
}
