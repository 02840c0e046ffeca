package spawners

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// EntitySpawner manages the creation of game entities. Created entities are
// staged in the world and appear at the next flush.
type EntitySpawner struct {
	world     *ecs.World
	templates *data.Library
	cfg       *config.Game
	log       *zap.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templates *data.Library, cfg *config.Game, log *zap.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:     world,
		templates: templates,
		cfg:       cfg,
		log:       log,
	}
}

// GroundY returns the world ground line
func (s *EntitySpawner) GroundY() float64 {
	return s.cfg.Physics.GroundY
}

// CreatePlayer creates the player entity standing on the ground at x
func (s *EntitySpawner) CreatePlayer(x float64) *ecs.Entity {
	p := s.cfg.Player
	player := s.world.CreateEntity(components.TagPlayer)

	player.AddComponent(components.Transform, components.NewTransformComponent(x, s.GroundY()-p.Height, p.Width, p.Height))

	velocity := components.NewVelocityComponent(p.MoveSpeed, 0)
	velocity.MaxVX = p.MoveSpeed * 2
	velocity.MaxVY = p.JumpForce * 2
	player.AddComponent(components.Velocity, velocity)

	player.AddComponent(components.Physics, &components.PhysicsComponent{
		Grounded:    true,
		OnGround:    true,
		LastGroundY: s.GroundY(),
	})
	player.AddComponent(components.Collider, components.NewColliderComponent(p.Width, p.Height, components.TagPlayer))
	player.AddComponent(components.Sprite, components.NewSpriteComponent("player", "run", components.LayerPlayer))
	player.AddComponent(components.Animation, &components.AnimationComponent{})
	player.AddComponent(components.Health, components.NewHealthComponent(p.Health))
	player.AddComponent(components.PlayerController, &components.PlayerControllerComponent{
		JumpForce:     p.JumpForce,
		MoveSpeed:     p.MoveSpeed,
		SprayPower:    p.MaxSprayPower,
		MaxSprayPower: p.MaxSprayPower,
		SprayRegen:    p.SprayRegen,
		StandHeight:   p.Height,
		DuckHeight:    p.DuckHeight,
	})

	s.log.Debug("player created", zap.Uint64("entity", uint64(player.ID)), zap.Float64("x", x))
	return player
}

// CreateCamera creates a camera entity that follows the given target entity
func (s *EntitySpawner) CreateCamera(target *ecs.Entity) *ecs.Entity {
	camera := s.world.CreateEntity(components.TagCamera)
	cameraComp := components.NewCameraComponent(target.ID, config.PlayerScreenX)

	// Set initial camera position
	if comp, ok := target.GetComponent(components.Transform); ok {
		cameraComp.X = comp.(*components.TransformComponent).X - cameraComp.LeadX
	}

	camera.AddComponent(components.Camera, cameraComp)
	return camera
}

// CreateObstacle creates an obstacle of a template kind. x is the left edge,
// height the gap between the ground line and the obstacle's bottom.
func (s *EntitySpawner) CreateObstacle(kind string, x, height float64) (*ecs.Entity, error) {
	template, exists := s.templates.Obstacles[kind]
	if !exists {
		return nil, fmt.Errorf("no obstacle template found for kind '%s'", kind)
	}

	y := s.GroundY() - height - template.Height
	if template.Sunk {
		y = s.GroundY() - template.Height/2
	}

	obstacle := s.world.CreateEntity(components.TagObstacle)
	obstacle.AddComponent(components.Transform, components.NewTransformComponent(x, y, template.Width, template.Height))
	obstacle.AddComponent(components.Obstacle, &components.ObstacleComponent{
		Kind:   kind,
		Damage: template.Damage,
	})

	collider := components.NewColliderComponent(template.Width, template.Height, "hazard")
	collider.Trigger = true
	obstacle.AddComponent(components.Collider, collider)

	sprite := components.NewSpriteComponent(kind, "idle", components.LayerObstacles)
	sprite.Tint = data.ParseHexColor(template.Color)
	obstacle.AddComponent(components.Sprite, sprite)

	if template.AI != "" {
		if err := s.attachAI(obstacle, template, x, y); err != nil {
			return nil, err
		}
	}

	return obstacle, nil
}

// attachAI gives an obstacle a body and a controller for its behavior kind
func (s *EntitySpawner) attachAI(obstacle *ecs.Entity, template data.ObstacleTemplate, x, y float64) error {
	var (
		ai  *components.AIControllerComponent
		err error
	)
	switch template.AI {
	case components.BehaviorPatrol:
		ai, err = components.NewPatrolAI(s.cfg.AI.Patrol, x, y)
	case components.BehaviorChase:
		ai, err = components.NewChaseAI(s.cfg.AI.Chase, x, y)
	case components.BehaviorGuard:
		ai, err = components.NewGuardAI(s.cfg.AI.Guard, x, y)
	default:
		err = fmt.Errorf("unknown ai behavior '%s'", template.AI)
	}
	if err != nil {
		return err
	}

	velocity := components.NewVelocityComponent(0, 0)
	if template.Flying {
		velocity.GravityScale = 0
	}
	obstacle.AddComponent(components.Velocity, velocity)
	obstacle.AddComponent(components.Physics, &components.PhysicsComponent{
		Grounded: !template.Flying,
		OnGround: !template.Flying,
	})
	obstacle.AddComponent(components.AIController, ai)
	obstacle.AddTag(components.TagEnemy)
	return nil
}

// CreateCollectible creates a pickup of a template kind
func (s *EntitySpawner) CreateCollectible(kind string, x, height float64) (*ecs.Entity, error) {
	template, exists := s.templates.Collectibles[kind]
	if !exists {
		return nil, fmt.Errorf("no collectible template found for kind '%s'", kind)
	}

	y := s.GroundY() - height - template.Height
	collectible := s.world.CreateEntity(components.TagCollectible)
	collectible.AddComponent(components.Transform, components.NewTransformComponent(x, y, template.Width, template.Height))
	collectible.AddComponent(components.Collectible, &components.CollectibleComponent{
		Kind:  kind,
		Value: template.Value,
	})

	collider := components.NewColliderComponent(template.Width, template.Height, "pickup")
	collider.Trigger = true
	collectible.AddComponent(components.Collider, collider)

	sprite := components.NewSpriteComponent(kind, "spin_1", components.LayerPickups)
	sprite.Tint = data.ParseHexColor(template.Color)
	collectible.AddComponent(components.Sprite, sprite)
	collectible.AddComponent(components.Animation, components.NewAnimationComponent(
		[]string{"spin_1", "spin_2", "spin_3", "spin_4"}, 0.12, true))

	return collectible, nil
}

// CollectibleColor returns the tint of a collectible kind, white when unknown
func (s *EntitySpawner) CollectibleColor(kind string) string {
	if template, ok := s.templates.Collectibles[kind]; ok {
		return template.Color
	}
	return "#ffffff"
}
