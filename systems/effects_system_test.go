package systems

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/spawners"
)

func TestEffects_SpawnCountsPerKind(t *testing.T) {
	f := newFixture(t)
	effects := NewEffectsSystem(f.spawner, f.rng)

	tests := []struct {
		kind EffectKind
		want int
	}{
		{EffectJump, 8},
		{EffectLanding, 12},
		{EffectSpray, 5},
		{EffectCrash, 15},
		{EffectCollect, 10},
		{EffectKind("unknown"), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f.world.Entities.Clear()
			assert.Equal(t, tt.want, effects.Spawn(tt.kind, 100, 100, nil))
			added, _ := f.world.Flush()
			assert.Equal(t, tt.want, added)
			assert.Len(t, f.world.Entities.QueryByTag(components.TagParticle), tt.want)
		})
	}
}

func TestEffects_EventsAreQueuedUntilUpdate(t *testing.T) {
	f := newFixture(t)
	effects := NewEffectsSystem(f.spawner, f.rng)
	effects.Initialize(f.world)

	tint := color.RGBA{1, 2, 3, 255}
	f.world.EmitEvent(EffectEvent{Kind: EffectCollect, X: 50, Y: 50, Tint: tint})
	adds, _ := f.world.Entities.Pending()
	assert.Zero(t, adds)

	effects.Update(f.world, tick)
	f.world.Flush()

	particles := f.world.Entities.QueryByTag(components.TagParticle)
	require.Len(t, particles, 10)
	for _, p := range particles {
		assert.Equal(t, tint, components.GetSprite(p).Tint)
	}

	// Nothing left to spawn
	effects.Update(f.world, tick)
	adds, _ = f.world.Entities.Pending()
	assert.Zero(t, adds)

	effects.Close()
	f.world.EmitEvent(EffectEvent{Kind: EffectCrash})
	effects.Update(f.world, tick)
	adds, _ = f.world.Entities.Pending()
	assert.Zero(t, adds, "events emitted after Close are dropped")
}

func TestEffects_UpdateAfterCloseDoesNotResubscribe(t *testing.T) {
	f := newFixture(t)
	effects := NewEffectsSystem(f.spawner, f.rng)
	effects.Initialize(f.world)
	effects.Close()

	effects.Update(f.world, tick)
	f.world.EmitEvent(EffectEvent{Kind: EffectCrash})
	effects.Update(f.world, tick)

	adds, _ := f.world.Entities.Pending()
	assert.Zero(t, adds)
}

func TestParticle_FadesAndExpires(t *testing.T) {
	f := newFixture(t)
	p := f.spawner.CreateParticle(spawners.ParticleSpec{X: 10, Y: 10, Lifetime: 1, FadeOut: true})
	f.world.Flush()

	particles := NewParticleSystem()
	particles.Update(f.world, 0.25)
	assert.InDelta(t, 0.75, components.GetSprite(p).Opacity, 1e-9)
	assert.Len(t, components.GetParticle(p).Trail(), 1)
	assert.False(t, p.PendingDestroy)

	for i := 0; i < 10; i++ {
		particles.Update(f.world, 0.05)
	}
	assert.Len(t, components.GetParticle(p).Trail(), components.ParticleTrailCapacity)

	particles.Update(f.world, 1)
	assert.True(t, p.PendingDestroy)
	_, removed := f.world.Flush()
	assert.Equal(t, 1, removed)
}

func TestAnimation_LoopAndComplete(t *testing.T) {
	f := newFixture(t)
	looping := f.world.CreateEntity()
	looping.AddComponent(components.Sprite, components.NewSpriteComponent("coin", "a", components.LayerPickups))
	looping.AddComponent(components.Animation, components.NewAnimationComponent([]string{"a", "b"}, 0.1, true))

	once := f.world.CreateEntity()
	once.AddComponent(components.Sprite, components.NewSpriteComponent("fx", "x", components.LayerParticles))
	anim := &components.AnimationComponent{}
	completed := 0
	anim.Play([]string{"x", "y", "z"}, 0.1, false, func() { completed++ })
	once.AddComponent(components.Animation, anim)
	f.world.Flush()

	system := NewAnimationSystem()
	system.Update(f.world, 0.15)
	assert.Equal(t, "b", components.GetSprite(looping).Frame)
	assert.Equal(t, "y", components.GetSprite(once).Frame)

	system.Update(f.world, 0.1)
	assert.Equal(t, "a", components.GetSprite(looping).Frame)

	system.Update(f.world, 0.5)
	assert.Equal(t, "z", components.GetSprite(once).Frame)
	assert.False(t, anim.Playing)
	assert.Equal(t, 1, completed)

	system.Update(f.world, 0.5)
	assert.Equal(t, 1, completed)
}
