package spawners

import (
	"image/color"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// ParticleSpec describes one particle to spawn
type ParticleSpec struct {
	X, Y         float64
	VX, VY       float64
	Size         float64
	Lifetime     float64
	GravityScale float64
	Color        color.Color
	FadeOut      bool
}

// CreateBuilding creates a background building standing on the ground. When
// paintable, it also carries a StreetArt component and a trigger collider.
func (s *EntitySpawner) CreateBuilding(template data.BuildingTemplate, x, width, height float64, paintable bool) *ecs.Entity {
	building := s.world.CreateEntity(components.TagBuilding)
	y := s.GroundY() - height

	building.AddComponent(components.Transform, components.NewTransformComponent(x, y, width, height))

	sprite := components.NewSpriteComponent("building_"+template.Kind, "plain", components.LayerBuildings)
	sprite.Tint = data.ParseHexColor(template.Color)
	building.AddComponent(components.Sprite, sprite)

	if paintable {
		building.AddTag(components.TagStreetArt)
		sprite.Frame = "blank"
		building.AddComponent(components.StreetArt, &components.StreetArtComponent{
			Required: s.cfg.World.StreetArtRequired,
		})
		collider := components.NewColliderComponent(width, height, "art")
		collider.Trigger = true
		building.AddComponent(components.Collider, collider)
	}

	return building
}

// CreateParticle creates a short-lived particle entity
func (s *EntitySpawner) CreateParticle(spec ParticleSpec) *ecs.Entity {
	particle := s.world.CreateEntity(components.TagParticle)

	size := spec.Size
	if size <= 0 {
		size = 4
	}
	particle.AddComponent(components.Transform, components.NewTransformComponent(spec.X-size/2, spec.Y-size/2, size, size))

	velocity := components.NewVelocityComponent(spec.VX, spec.VY)
	velocity.GravityScale = spec.GravityScale
	particle.AddComponent(components.Velocity, velocity)
	particle.AddComponent(components.Physics, &components.PhysicsComponent{Bounce: 0.3})

	sprite := components.NewSpriteComponent("particle", "dot", components.LayerParticles)
	sprite.Tint = spec.Color
	particle.AddComponent(components.Sprite, sprite)
	particle.AddComponent(components.Particle, components.NewParticleComponent(spec.Lifetime, spec.FadeOut))

	return particle
}
