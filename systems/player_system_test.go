package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
)

func TestPlayer_JumpOnlyWhenGrounded(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(100)
	f.world.Flush()

	effects := record[EffectEvent](f.world, EventEffect)
	players := NewPlayerSystem(f.rng)
	ctrl := components.GetPlayerController(player)
	velocity := components.GetVelocity(player)
	body := components.GetPhysics(player)

	ctrl.Actions.Jump = true
	players.Update(f.world, tick)

	assert.Equal(t, -ctrl.JumpForce, velocity.VY)
	assert.False(t, body.Grounded)
	assert.True(t, ctrl.IsJumping)
	assert.False(t, ctrl.Actions.Jump, "actions reset after the pass")
	require.Len(t, *effects, 1)
	assert.Equal(t, EffectJump, (*effects)[0].Kind)

	anim := components.GetAnimation(player)
	assert.True(t, anim.Playing)
	assert.Equal(t, "jump_1", anim.CurrentFrame())

	// Mid-air jump is ignored
	velocity.VY = 100
	ctrl.Actions.Jump = true
	players.Update(f.world, tick)
	assert.Equal(t, 100.0, velocity.VY)

	// Landing clears the jumping flag
	body.Grounded = true
	players.Update(f.world, tick)
	assert.False(t, ctrl.IsJumping)
}

func TestPlayer_DuckOverridesCollider(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(100)
	f.world.Flush()

	players := NewPlayerSystem(f.rng)
	ctrl := components.GetPlayerController(player)
	collider := components.GetCollider(player)

	ctrl.Actions.Duck = true
	players.Update(f.world, tick)
	assert.True(t, ctrl.IsDucking)
	assert.Equal(t, ctrl.DuckHeight, collider.H)
	assert.Equal(t, ctrl.StandHeight-ctrl.DuckHeight, collider.OffsetY)
	assert.Equal(t, FrameDuck, components.GetSprite(player).Frame)

	players.Update(f.world, tick)
	assert.False(t, ctrl.IsDucking)
	assert.Equal(t, ctrl.StandHeight, collider.H)
	assert.Zero(t, collider.OffsetY)
	assert.Equal(t, FrameRun, components.GetSprite(player).Frame)
}

func TestPlayer_SprayNeedsPower(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(100)
	f.world.Flush()

	effects := record[EffectEvent](f.world, EventEffect)
	sounds := record[SoundEvent](f.world, EventSound)
	players := NewPlayerSystem(f.rng)
	ctrl := components.GetPlayerController(player)

	ctrl.Actions.Spray = true
	players.Update(f.world, tick)
	assert.True(t, ctrl.IsSpraying)
	assert.Equal(t, FrameSpray, components.GetSprite(player).Frame)
	require.Len(t, *effects, 1)
	assert.Equal(t, EffectSpray, (*effects)[0].Kind)
	assert.NotNil(t, (*effects)[0].Tint)
	assert.Equal(t, []SoundEvent{{ID: SoundSpray}}, *sounds)

	ctrl.SprayPower = 0
	ctrl.SprayRegen = 0
	ctrl.Actions.Spray = true
	players.Update(f.world, tick)
	assert.False(t, ctrl.IsSpraying)
	assert.Len(t, *effects, 1)
}

func TestPlayer_RegenAndInvulnerabilityTimer(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(100)
	f.world.Flush()

	players := NewPlayerSystem(f.rng)
	ctrl := components.GetPlayerController(player)
	health := components.GetHealth(player)
	sprite := components.GetSprite(player)

	ctrl.SprayPower = 10
	health.SetInvulnerable(0.5)
	players.Update(f.world, 0.25)
	assert.InDelta(t, 10+ctrl.SprayRegen*0.25, ctrl.SprayPower, 1e-9)
	assert.True(t, health.Invulnerable)
	assert.Equal(t, invulnerableOpacity, sprite.Opacity)

	players.Update(f.world, 0.25)
	assert.False(t, health.Invulnerable)
	assert.Equal(t, 1.0, sprite.Opacity)
}

func TestPlayer_AutoRun(t *testing.T) {
	f := newFixture(t)
	player := f.spawner.CreatePlayer(100)
	f.world.Flush()

	velocity := components.GetVelocity(player)
	velocity.VX = 0
	NewPlayerSystem(f.rng).Update(f.world, tick)
	assert.Equal(t, components.GetPlayerController(player).MoveSpeed, velocity.VX)
}
