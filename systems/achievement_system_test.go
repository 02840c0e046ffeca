package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
)

func TestAchievement_CheckUnlocksOnce(t *testing.T) {
	f := newFixture(t)
	achievements := NewAchievementSystem(DefaultAchievements(), f.state, f.store, zaptest.NewLogger(t))
	unlocks := record[AchievementEvent](f.world, EventAchievement)

	assert.False(t, achievements.Check(f.world, "marathon", false))
	assert.True(t, achievements.Check(f.world, "marathon", true))
	assert.False(t, achievements.Check(f.world, "marathon", true))
	assert.False(t, achievements.Check(f.world, "no_such_thing", true))

	require.Len(t, *unlocks, 1)
	assert.Equal(t, "Marathon", (*unlocks)[0].Name)

	// The unlocked set survives a reload through the store
	reloaded := storage.LoadAchievements(f.store, zap.NewNop())
	assert.Equal(t, map[string]bool{"marathon": true}, reloaded)

	again := NewAchievementSystem(DefaultAchievements(), f.state, f.store, zap.NewNop())
	assert.True(t, again.IsUnlocked("marathon"))
	assert.False(t, again.Check(f.world, "marathon", true))
}

func TestAchievement_EvaluateAgainstRunState(t *testing.T) {
	f := newFixture(t)
	achievements := NewAchievementSystem(DefaultAchievements(), f.state, f.store, zap.NewNop())

	f.state.Distance = 3200
	f.state.LastHitDistance = 100
	f.state.Score = 5000
	achievements.Update(f.world, tick)

	var ids []string
	for _, a := range achievements.Unlocked() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"first_steps", "high_roller", "survivor"}, ids)
}

func TestAchievement_CorruptStoreStartsEmpty(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Save(storage.KeyAchievements, []byte("{{{not yaml")))

	achievements := NewAchievementSystem(DefaultAchievements(), f.state, f.store, zap.NewNop())
	assert.Empty(t, achievements.Unlocked())
}

func TestMessageLog_ToastsFromEvents(t *testing.T) {
	f := newFixture(t)
	log := NewMessageLog()
	log.Initialize(f.world)

	f.world.EmitEvent(AchievementEvent{ID: "marathon", Name: "Marathon"})
	f.world.EmitEvent(CollectEvent{Kind: components.CollectibleCoin})
	f.world.EmitEvent(CollectEvent{Kind: components.CollectiblePowerUp})

	recent := log.RecentMessages(5)
	require.Len(t, recent, 2)
	assert.Equal(t, MessageTypeScore, recent[0].Type)
	assert.Equal(t, "Achievement: Marathon", recent[1].Text)

	log.Update(DefaultToastTTL + 0.1)
	assert.Empty(t, log.RecentMessages(5))

	log.Close()
	f.world.EmitEvent(AchievementEvent{Name: "Ignored"})
	assert.Empty(t, log.Messages)
}

func TestMessageLog_Truncates(t *testing.T) {
	log := NewMessageLog()
	log.MaxMessages = 3
	for _, text := range []string{"a", "b", "c", "d"} {
		log.Add(text, MessageTypeNormal)
	}
	recent := log.RecentMessages(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Text)
	assert.Equal(t, "b", recent[2].Text)
}

func TestCamera_FollowsTargetAndShakes(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(300)
	camera := f.spawner.CreateCamera(player)
	f.world.Flush()

	system := NewCameraSystem(f.rng)
	system.Initialize(f.world)

	components.GetTransform(player).X = 1000
	system.Update(f.world, tick)
	cam := components.GetCamera(camera)
	assert.Equal(t, 1000-cam.LeadX, cam.X)

	x, _ := system.Offset(f.world)
	assert.Equal(t, cam.X, x)

	f.world.EmitEvent(ShakeEvent{Magnitude: 8, Duration: 0.2})
	system.Update(f.world, tick)
	assert.LessOrEqual(t, cam.ShakeX, 8.0)
	assert.GreaterOrEqual(t, cam.ShakeX, -8.0)
	assert.Greater(t, cam.ShakeTime, 0.0)

	for i := 0; i < 30; i++ {
		system.Update(f.world, tick)
	}
	assert.Zero(t, cam.ShakeX)
	assert.Zero(t, cam.ShakeY)
}

type soundRecorder struct {
	played []string
}

func (r *soundRecorder) PlaySound(id string) {
	r.played = append(r.played, id)
}

func TestAudio_ForwardsSoundEvents(t *testing.T) {
	f := newFixture(t)
	recorder := &soundRecorder{}
	audio := NewAudioSystem(recorder)
	audio.Initialize(f.world)

	f.world.EmitEvent(SoundEvent{ID: SoundJump})
	audio.SetMuted(true)
	f.world.EmitEvent(SoundEvent{ID: SoundCrash})
	audio.SetMuted(false)
	f.world.EmitEvent(SoundEvent{ID: SoundCoin})
	audio.Close()
	f.world.EmitEvent(SoundEvent{ID: SoundLand})

	assert.Equal(t, []string{SoundJump, SoundCoin}, recorder.played)

	// A nil player is a silent no-op
	silent := NewAudioSystem(nil)
	silent.Initialize(f.world)
	f.world.EmitEvent(SoundEvent{ID: SoundJump})
}

func TestGameState_EndGameOnce(t *testing.T) {
	f := newFixture(t)
	state := NewGameState(100)
	overs := record[GameOverEvent](f.world, EventGameOver)

	state.AddScore(f.world, 150)
	assert.True(t, state.EndGame(f.world))
	assert.False(t, state.EndGame(f.world))

	require.Len(t, *overs, 1)
	stats := (*overs)[0].Stats
	assert.Equal(t, 150, stats.Score)
	assert.Equal(t, 150, stats.HighScore)
	assert.True(t, stats.NewHighScore)
}
