package systems

import (
	"math"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// PhysicsSystem integrates velocity and gravity and resolves contact with the
// ground line
type PhysicsSystem struct {
	cfg config.Physics
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.Physics) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

// Update advances every entity with Transform, Velocity and Physics
func (s *PhysicsSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Query(components.Transform, components.Velocity, components.Physics) {
		transform := components.GetTransform(entity)
		velocity := components.GetVelocity(entity)
		body := components.GetPhysics(entity)

		transform.PrevX, transform.PrevY = transform.X, transform.Y
		if body.Static {
			continue
		}

		if !body.Grounded {
			velocity.VY += s.cfg.Gravity * velocity.GravityScale * dt
		}
		if body.OnGround && velocity.Friction > 0 && velocity.Friction < 1 {
			velocity.VX *= math.Pow(velocity.Friction, dt)
		}
		velocity.VX = clampAbs(velocity.VX, velocity.MaxVX)
		velocity.VY = clampAbs(velocity.VY, velocity.MaxVY)

		transform.X += velocity.VX * dt
		transform.Y += velocity.VY * dt

		s.resolveGround(world, entity, transform, velocity, body)
	}
}

// resolveGround clamps the entity onto the ground line and handles the
// grounded transitions
func (s *PhysicsSystem) resolveGround(world *ecs.World, entity *ecs.Entity, transform *components.TransformComponent,
	velocity *components.VelocityComponent, body *components.PhysicsComponent) {
	groundY := s.cfg.GroundY

	if transform.Bottom() > groundY {
		transform.Y = groundY - transform.H
		if velocity.VY > 0 {
			impact := velocity.VY
			wasAirborne := !body.Grounded
			velocity.VY = -velocity.VY * body.Bounce
			body.Grounded = true
			body.OnGround = true
			body.LastGroundY = groundY

			if wasAirborne && impact > s.cfg.HardLandingVY && entity.HasTag(components.TagPlayer) {
				world.EmitEvent(EffectEvent{Kind: EffectLanding, X: transform.CenterX(), Y: groundY})
				world.EmitEvent(SoundEvent{ID: SoundLand})
			}
		}
		return
	}

	// Leaving the ground takes a real upward push, not ground noise
	if body.Grounded && velocity.VY < -s.cfg.LeaveGroundVY {
		body.Grounded = false
		body.OnGround = false
	}
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
