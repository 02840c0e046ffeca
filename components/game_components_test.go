package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ClampedToRange(t *testing.T) {
	h := NewHealthComponent(3)

	require.True(t, h.TakeDamage(5))
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.IsDead())

	h.Heal(10)
	assert.Equal(t, 3, h.Current)
}

func TestHealth_InvulnerableBlocksDamage(t *testing.T) {
	h := NewHealthComponent(3)
	h.SetInvulnerable(1.5)

	assert.False(t, h.TakeDamage(1))
	assert.Equal(t, 3, h.Current)

	h.Tick(1.0)
	assert.True(t, h.Invulnerable)
	h.Tick(0.6)
	assert.False(t, h.Invulnerable)
	assert.Zero(t, h.InvulnerableTime)
	assert.True(t, h.TakeDamage(1))
	assert.Equal(t, 2, h.Current)
}

func TestHealth_LongerInvulnerabilityWins(t *testing.T) {
	h := NewHealthComponent(3)
	h.SetInvulnerable(3.0)
	h.SetInvulnerable(1.5)
	assert.Equal(t, 3.0, h.InvulnerableTime)
}

func TestParticle_TrailIsBounded(t *testing.T) {
	p := NewParticleComponent(1, true)
	for i := 0; i < ParticleTrailCapacity+3; i++ {
		p.PushTrail(float64(i), 0)
	}

	trail := p.Trail()
	require.Len(t, trail, ParticleTrailCapacity)
	assert.Equal(t, 3.0, trail[0].X)
	assert.Equal(t, float64(ParticleTrailCapacity+2), trail[len(trail)-1].X)
}

func TestPlayerController_SprayPowerClamped(t *testing.T) {
	p := &PlayerControllerComponent{SprayPower: 90, MaxSprayPower: 100}
	p.AddSprayPower(25)
	assert.Equal(t, 100.0, p.SprayPower)
	p.AddSprayPower(-150)
	assert.Equal(t, 0.0, p.SprayPower)
}

func TestAIConfigs(t *testing.T) {
	patrol, err := NewPatrolAI(PatrolConfig{Speed: 50}, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 50.0, patrol.Patrol.Speed)
	assert.Equal(t, DefaultPatrolConfig().Range, patrol.Patrol.Range)
	assert.Equal(t, AIStateIdle, patrol.State)
	assert.Equal(t, 10.0, patrol.HomeX)

	_, err = NewChaseAI(ChaseConfig{Speed: -1}, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidAIConfig)

	_, err = NewGuardAI(GuardConfig{AlertRadius: 400, GuardRadius: 100}, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidAIConfig)
}

func TestClampLayer(t *testing.T) {
	assert.Equal(t, 0, ClampLayer(-4))
	assert.Equal(t, 10, ClampLayer(42))
	assert.Equal(t, 5, ClampLayer(5))
}
