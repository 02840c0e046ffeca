package systems

import (
	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// ParticleSystem ages particles, records their trails and expires them
type ParticleSystem struct{}

// NewParticleSystem creates a new particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Update processes every particle entity
func (s *ParticleSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Query(components.Particle, components.Transform) {
		particle := components.GetParticle(entity)
		transform := components.GetTransform(entity)

		particle.Lifetime -= dt
		particle.PushTrail(transform.CenterX(), transform.CenterY())

		if particle.FadeOut {
			if sprite := components.GetSprite(entity); sprite != nil {
				sprite.Opacity = particle.LifeRatio()
			}
		}

		if particle.Lifetime <= 0 {
			entity.Destroy()
		}
	}
}
