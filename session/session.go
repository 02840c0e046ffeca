package session

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/generation"
	"github.com/noamm-opencalw/chromatic-rush-game/spawners"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
	"github.com/noamm-opencalw/chromatic-rush-game/systems"
)

// Input reports whether an action is currently held
type Input interface {
	IsHeld(action components.Action) bool
}

var actions = []components.Action{components.ActionJump, components.ActionDuck, components.ActionSpray}

// Options wires a session to its collaborators. Only Config is required.
type Options struct {
	Config    *config.Game
	Templates *data.Library       // Embedded library when nil
	Store     storage.Store       // In-memory store when nil
	Sounds    systems.SoundPlayer // Silent when nil
	Input     Input               // No input when nil
	Log       *zap.Logger         // No logging when nil
}

// Session owns one run: the world, its systems and the run state
type Session struct {
	RunID    uuid.UUID
	World    *ecs.World
	State    *systems.GameState
	Messages *systems.MessageLog

	cfg   *config.Game
	log   *zap.Logger
	store storage.Store
	input Input

	spawner      *spawners.EntitySpawner
	generator    *generation.WorldGenerator
	camera       *systems.CameraSystem
	effects      *systems.EffectsSystem
	audio        *systems.AudioSystem
	achievements *systems.AchievementSystem

	player     *ecs.Entity
	startX     float64
	gameOverID ecs.SubscriptionID
	paused     bool
	closed     bool
}

// New creates a session with the player standing at the configured start
func New(opts Options) (*Session, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("session: %w: missing config", config.ErrInvalidConfig)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	templates := opts.Templates
	if templates == nil {
		lib, err := data.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("session: failed to load templates: %w", err)
		}
		templates = lib
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	cfg := opts.Config
	runID := uuid.New()
	log = log.With(zap.String("run_id", runID.String()))
	seed := cfg.RandSeed()
	rng := rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()
	state := systems.NewGameState(storage.LoadHighScore(store, log))
	spawner := spawners.NewEntitySpawner(world, templates, cfg, log)

	s := &Session{
		RunID:    runID,
		World:    world,
		State:    state,
		Messages: systems.NewMessageLog(),
		cfg:      cfg,
		log:      log,
		store:    store,
		input:    opts.Input,
		spawner:  spawner,
		camera:   systems.NewCameraSystem(rng),
		effects:  systems.NewEffectsSystem(spawner, rng),
		audio:    systems.NewAudioSystem(opts.Sounds),
		startX:   cfg.Player.StartX,
	}
	s.achievements = systems.NewAchievementSystem(systems.DefaultAchievements(), state, store, log)

	world.AddSystem(systems.NewPhysicsSystem(cfg.Physics))
	world.AddSystem(systems.NewCollisionSystem(cfg.Physics, state, s.achievements, log))
	world.AddSystem(systems.NewAnimationSystem())
	world.AddSystem(systems.NewPlayerSystem(rng))
	world.AddSystem(systems.NewAISystem(rng))
	world.AddSystem(systems.NewParticleSystem())
	world.AddSystem(s.effects)
	world.AddSystem(s.achievements)

	s.effects.Initialize(world)
	s.camera.Initialize(world)
	s.audio.Initialize(world)
	s.Messages.Initialize(world)
	s.gameOverID = world.GetEventManager().Subscribe(systems.EventGameOver, func(event ecs.Event) {
		s.handleGameOver(event.(systems.GameOverEvent))
	})

	s.player = spawner.CreatePlayer(s.startX)
	spawner.CreateCamera(s.player)

	s.generator = generation.NewWorldGenerator(world, spawner, templates, cfg.World, s.startX, log)
	s.generator.SetSeed(seed)
	s.generator.Update(s.startX, 0)
	world.Flush()

	log.Info("run started", zap.Int64("seed", seed), zap.Int("high_score", state.HighScore))
	return s, nil
}

// Tick advances the run by dt seconds. Paused, finished or closed sessions
// ignore ticks.
func (s *Session) Tick(dt float64) {
	if s.closed || s.paused || s.State.GameOver || dt <= 0 {
		return
	}
	if dt > s.cfg.Physics.MaxDeltaTime {
		dt = s.cfg.Physics.MaxDeltaTime
	}

	if added, removed := s.World.Flush(); added > 0 || removed > 0 {
		s.log.Debug("flush", zap.Int("added", added), zap.Int("removed", removed), zap.Int("entities", s.World.Entities.Len()))
	}

	s.pollInput()
	s.World.Update(dt)
	s.State.PlayTime += dt

	playerX := s.playerX()
	if distance := playerX - s.startX; distance > s.State.Distance {
		s.State.Distance = distance
	}
	s.generator.Update(playerX, s.State.Distance)
	s.camera.Update(s.World, dt)
	s.Messages.Update(dt)
}

// pollInput copies the held actions into the player's controller
func (s *Session) pollInput() {
	if s.input == nil {
		return
	}
	ctrl := components.GetPlayerController(s.player)
	if ctrl == nil {
		return
	}
	for _, action := range actions {
		ctrl.SetAction(action, s.input.IsHeld(action))
	}
}

func (s *Session) playerX() float64 {
	if t := components.GetTransform(s.player); t != nil {
		return t.X
	}
	return s.startX
}

func (s *Session) handleGameOver(event systems.GameOverEvent) {
	stats := event.Stats
	s.log.Info("run over",
		zap.Int("score", stats.Score),
		zap.Float64("distance", stats.Distance),
		zap.Int("painted", stats.PaintedWalls),
		zap.Bool("new_high_score", stats.NewHighScore))

	if !stats.NewHighScore {
		return
	}
	if err := storage.SaveHighScore(s.store, stats.Score); err != nil {
		s.log.Warn("failed to save high score", zap.Error(err))
	}
}

// Pause stops the run from advancing
func (s *Session) Pause() {
	s.setPaused(true)
}

// Resume lets the run advance again
func (s *Session) Resume() {
	s.setPaused(false)
}

// TogglePause flips the pause state
func (s *Session) TogglePause() {
	s.setPaused(!s.paused)
}

func (s *Session) setPaused(paused bool) {
	if s.closed || s.State.GameOver || s.paused == paused {
		return
	}
	s.paused = paused
	s.World.EmitEvent(systems.PauseEvent{Paused: paused, Stats: s.State.Stats()})
}

// Paused reports whether the run is paused
func (s *Session) Paused() bool {
	return s.paused
}

// Over reports whether the run has ended
func (s *Session) Over() bool {
	return s.State.GameOver
}

// Stats returns the current run summary
func (s *Session) Stats() systems.RunStats {
	return s.State.Stats()
}

// Player returns the player entity
func (s *Session) Player() *ecs.Entity {
	return s.player
}

// Spawner returns the session's entity spawner
func (s *Session) Spawner() *spawners.EntitySpawner {
	return s.spawner
}

// Achievements returns the achievement registry of the run
func (s *Session) Achievements() *systems.AchievementSystem {
	return s.achievements
}

// Audio returns the sound bridge, e.g. to mute it
func (s *Session) Audio() *systems.AudioSystem {
	return s.audio
}

// CameraOffset returns the world position drawn at the screen's top-left
func (s *Session) CameraOffset() (x, y float64) {
	return s.camera.Offset(s.World)
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.World.GetEventManager().Unsubscribe(systems.EventGameOver, s.gameOverID)
	s.effects.Close()
	s.camera.Close()
	s.audio.Close()
	s.Messages.Close()
	s.World.Close()
	s.log.Debug("run closed")
}
