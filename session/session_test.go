package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
	"github.com/noamm-opencalw/chromatic-rush-game/systems"
)

const tick = 1.0 / 60

type scriptedInput map[components.Action]bool

func (in scriptedInput) IsHeld(action components.Action) bool {
	return in[action]
}

func newTestSession(t *testing.T, input Input, store storage.Store) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = "test-run"
	s, err := New(Options{Config: cfg, Store: store, Input: input, Log: zaptest.NewLogger(t)})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	bad := config.Default()
	bad.Physics.MaxDeltaTime = -1
	_, err = New(Options{Config: bad})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSession_StartsWithPlayerAndContent(t *testing.T) {
	s := newTestSession(t, nil, nil)

	assert.NotEqual(t, uuid.Nil, s.RunID)
	assert.Same(t, s.Player(), s.World.Entities.First(components.TagPlayer))
	assert.NotNil(t, s.World.Entities.First(components.TagCamera))
	assert.NotEmpty(t, s.World.Entities.QueryByTag(components.TagBuilding))
}

func TestSession_TickAdvancesRun(t *testing.T) {
	s := newTestSession(t, nil, nil)
	startX := components.GetTransform(s.Player()).X

	for i := 0; i < 60; i++ {
		s.Tick(tick)
	}

	x := components.GetTransform(s.Player()).X
	assert.Greater(t, x, startX)
	assert.InDelta(t, x-startX, s.State.Distance, 1e-9)
	assert.InDelta(t, 1.0, s.State.PlayTime, 1e-9)

	camX, _ := s.CameraOffset()
	assert.InDelta(t, x-config.PlayerScreenX, camX, 1e-9)
}

func TestSession_DeltaTimeIsClamped(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.Tick(5)
	assert.Equal(t, s.cfg.Physics.MaxDeltaTime, s.State.PlayTime)

	s.Tick(0)
	s.Tick(-1)
	assert.Equal(t, s.cfg.Physics.MaxDeltaTime, s.State.PlayTime)
}

func TestSession_InputDrivesPlayer(t *testing.T) {
	input := scriptedInput{components.ActionJump: true}
	s := newTestSession(t, input, nil)

	s.Tick(tick)

	ctrl := components.GetPlayerController(s.Player())
	assert.True(t, ctrl.IsJumping)
	assert.Negative(t, components.GetVelocity(s.Player()).VY)
	assert.False(t, ctrl.Actions.Jump, "actions are reset after the player pass")
}

func TestSession_HoldingSprayPaintsWalls(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "paint"
	cfg.Player.Health = 1000
	cfg.World.StreetArtChance = 1
	s, err := New(Options{
		Config: cfg,
		Input:  scriptedInput{components.ActionSpray: true},
		Log:    zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	walls := map[ecs.EntityID]bool{}
	s.World.GetEventManager().Subscribe(systems.EventPaint, func(e ecs.Event) {
		walls[e.(systems.PaintEvent).EntityID] = true
	})

	for i := 0; i < 30*60 && !s.Over(); i++ {
		s.Tick(tick)
	}

	assert.Positive(t, s.State.PaintedWalls)
	assert.Len(t, walls, s.State.PaintedWalls)
	assert.True(t, s.Achievements().IsUnlocked("first_piece"))
}

func TestSession_PauseStopsTicks(t *testing.T) {
	s := newTestSession(t, nil, nil)
	var pauses []systems.PauseEvent
	s.World.GetEventManager().Subscribe(systems.EventPause, func(e ecs.Event) {
		pauses = append(pauses, e.(systems.PauseEvent))
	})

	s.Pause()
	s.Pause()
	s.Tick(tick)
	assert.True(t, s.Paused())
	assert.Zero(t, s.State.PlayTime)

	s.TogglePause()
	s.Tick(tick)
	assert.False(t, s.Paused())
	assert.Positive(t, s.State.PlayTime)

	require.Len(t, pauses, 2)
	assert.True(t, pauses[0].Paused)
	assert.False(t, pauses[1].Paused)
}

func TestSession_GameOverSavesHighScore(t *testing.T) {
	store := storage.NewMemoryStore()
	s := newTestSession(t, nil, store)

	var overs []systems.GameOverEvent
	s.World.GetEventManager().Subscribe(systems.EventGameOver, func(e ecs.Event) {
		overs = append(overs, e.(systems.GameOverEvent))
	})

	player := s.Player()
	components.GetHealth(player).Current = 1
	s.State.AddScore(s.World, 500)
	_, err := s.Spawner().CreateObstacle("barrier", components.GetTransform(player).X+10, 0)
	require.NoError(t, err)

	s.Tick(tick)
	require.True(t, s.Over())
	require.Len(t, overs, 1)
	assert.True(t, overs[0].Stats.NewHighScore)
	assert.Equal(t, 500, storage.LoadHighScore(store, zaptest.NewLogger(t)))

	// A finished run ignores ticks and pause requests
	played := s.State.PlayTime
	s.Tick(tick)
	s.Pause()
	assert.Equal(t, played, s.State.PlayTime)
	assert.False(t, s.Paused())

	// The next run starts from the saved high score
	next := newTestSession(t, nil, store)
	assert.Equal(t, 500, next.State.HighScore)
}

func TestSession_SoundsReachThePlayer(t *testing.T) {
	cfg := config.Default()
	sounds := &recordingSounds{}
	s, err := New(Options{Config: cfg, Sounds: sounds, Input: scriptedInput{components.ActionJump: true}})
	require.NoError(t, err)
	defer s.Close()

	s.Tick(tick)
	assert.Contains(t, sounds.ids, systems.SoundJump)
}

type recordingSounds struct {
	ids []string
}

func (r *recordingSounds) PlaySound(id string) {
	r.ids = append(r.ids, id)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.Close()
	s.Close()
	assert.Zero(t, s.World.Entities.Len())

	s.Tick(tick)
	assert.Zero(t, s.State.PlayTime)
}
