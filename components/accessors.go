package components

import "github.com/noamm-opencalw/chromatic-rush-game/ecs"

// Typed accessors. Each returns nil when the entity lacks the component.

func GetTransform(e *ecs.Entity) *TransformComponent {
	comp, _ := e.GetComponent(Transform)
	t, _ := comp.(*TransformComponent)
	return t
}

func GetVelocity(e *ecs.Entity) *VelocityComponent {
	comp, _ := e.GetComponent(Velocity)
	v, _ := comp.(*VelocityComponent)
	return v
}

func GetPhysics(e *ecs.Entity) *PhysicsComponent {
	comp, _ := e.GetComponent(Physics)
	p, _ := comp.(*PhysicsComponent)
	return p
}

func GetCollider(e *ecs.Entity) *ColliderComponent {
	comp, _ := e.GetComponent(Collider)
	c, _ := comp.(*ColliderComponent)
	return c
}

func GetSprite(e *ecs.Entity) *SpriteComponent {
	comp, _ := e.GetComponent(Sprite)
	s, _ := comp.(*SpriteComponent)
	return s
}

func GetAnimation(e *ecs.Entity) *AnimationComponent {
	comp, _ := e.GetComponent(Animation)
	a, _ := comp.(*AnimationComponent)
	return a
}

func GetHealth(e *ecs.Entity) *HealthComponent {
	comp, _ := e.GetComponent(Health)
	h, _ := comp.(*HealthComponent)
	return h
}

func GetPlayerController(e *ecs.Entity) *PlayerControllerComponent {
	comp, _ := e.GetComponent(PlayerController)
	p, _ := comp.(*PlayerControllerComponent)
	return p
}

func GetAIController(e *ecs.Entity) *AIControllerComponent {
	comp, _ := e.GetComponent(AIController)
	a, _ := comp.(*AIControllerComponent)
	return a
}

func GetCollectible(e *ecs.Entity) *CollectibleComponent {
	comp, _ := e.GetComponent(Collectible)
	c, _ := comp.(*CollectibleComponent)
	return c
}

func GetParticle(e *ecs.Entity) *ParticleComponent {
	comp, _ := e.GetComponent(Particle)
	p, _ := comp.(*ParticleComponent)
	return p
}

func GetObstacle(e *ecs.Entity) *ObstacleComponent {
	comp, _ := e.GetComponent(Obstacle)
	o, _ := comp.(*ObstacleComponent)
	return o
}

func GetStreetArt(e *ecs.Entity) *StreetArtComponent {
	comp, _ := e.GetComponent(StreetArt)
	s, _ := comp.(*StreetArtComponent)
	return s
}

func GetCamera(e *ecs.Entity) *CameraComponent {
	comp, _ := e.GetComponent(Camera)
	c, _ := comp.(*CameraComponent)
	return c
}
