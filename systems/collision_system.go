package systems

import (
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// Collision response constants
const (
	SprayCanRefill    = 25.0
	PowerUpDuration   = 3.0
	PaintRate         = config.PaintRate
	PaintDrainRate    = PaintRate / 2
	PaintedWallReward = 250
)

// CollisionSystem sweeps all collider pairs and dispatches on their tags
type CollisionSystem struct {
	cfg          config.Physics
	state        *GameState
	achievements *AchievementSystem // Optional
	log          *zap.Logger
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg config.Physics, state *GameState, achievements *AchievementSystem, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{
		cfg:          cfg,
		state:        state,
		achievements: achievements,
		log:          log,
	}
}

// Update checks every pair of entities with Transform and Collider
func (s *CollisionSystem) Update(world *ecs.World, dt float64) {
	entities := world.Query(components.Transform, components.Collider)
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			if Overlaps(entities[i], entities[j]) {
				s.Resolve(world, entities[i], entities[j], dt)
			}
		}
	}
}

// Overlaps reports whether two entities' collider boxes intersect.
// Boxes that only touch do not overlap.
func Overlaps(a, b *ecs.Entity) bool {
	ta, ca := components.GetTransform(a), components.GetCollider(a)
	tb, cb := components.GetTransform(b), components.GetCollider(b)
	if ta == nil || ca == nil || tb == nil || cb == nil {
		return false
	}
	al, at, ar, ab := ca.Bounds(ta)
	bl, bt, br, bb := cb.Bounds(tb)
	return al < br && ar > bl && at < bb && ab > bt
}

// Resolve runs the handler for an overlapping pair, in either order
func (s *CollisionSystem) Resolve(world *ecs.World, a, b *ecs.Entity, dt float64) {
	if b.HasTag(components.TagPlayer) {
		a, b = b, a
	}
	if !a.HasTag(components.TagPlayer) {
		return
	}

	switch {
	case b.HasTag(components.TagObstacle):
		s.handleObstacle(world, a, b)
	case b.HasTag(components.TagCollectible):
		s.handleCollectible(world, a, b)
	case b.HasTag(components.TagStreetArt):
		s.handleStreetArt(world, a, b, dt)
	}
}

func (s *CollisionSystem) handleObstacle(world *ecs.World, player, obstacleEntity *ecs.Entity) {
	health := components.GetHealth(player)
	obstacle := components.GetObstacle(obstacleEntity)
	if health == nil || obstacle == nil {
		return
	}
	if health.Invulnerable || obstacle.Hit {
		return
	}
	if !health.TakeDamage(obstacle.Damage) {
		return
	}

	obstacle.Hit = true
	health.SetInvulnerable(s.cfg.InvulnerableHit)
	s.state.LastHitDistance = s.state.Distance

	x, y := entityCenter(player)
	world.EmitEvent(ShakeEvent{Magnitude: s.cfg.ShakeOnCrash, Duration: s.cfg.ShakeDuration})
	world.EmitEvent(EffectEvent{Kind: EffectCrash, X: x, Y: y})
	world.EmitEvent(SoundEvent{ID: SoundCrash})
	world.EmitEvent(HealthEvent{Current: health.Current, Max: health.Max})

	s.log.Debug("player hit",
		zap.String("obstacle", obstacle.Kind),
		zap.Int("health", health.Current))

	if health.IsDead() {
		s.state.EndGame(world)
	}
}

func (s *CollisionSystem) handleCollectible(world *ecs.World, player, item *ecs.Entity) {
	collectible := components.GetCollectible(item)
	if collectible == nil || collectible.Collected {
		return
	}
	collectible.Collected = true
	s.state.Collected++
	s.state.AddScore(world, collectible.Value)

	switch collectible.Kind {
	case components.CollectibleSprayCan:
		if ctrl := components.GetPlayerController(player); ctrl != nil {
			ctrl.AddSprayPower(SprayCanRefill)
			world.EmitEvent(SprayEvent{Power: ctrl.SprayPower, Max: ctrl.MaxSprayPower})
		}
		world.EmitEvent(SoundEvent{ID: SoundSprayCan})
	case components.CollectiblePowerUp:
		if health := components.GetHealth(player); health != nil {
			health.SetInvulnerable(PowerUpDuration)
		}
		world.EmitEvent(SoundEvent{ID: SoundPowerUp})
	default:
		world.EmitEvent(SoundEvent{ID: SoundCoin})
	}

	x, y := entityCenter(item)
	effect := EffectEvent{Kind: EffectCollect, X: x, Y: y}
	if sprite := components.GetSprite(item); sprite != nil {
		effect.Tint = sprite.Tint
	}
	world.EmitEvent(effect)
	world.EmitEvent(CollectEvent{EntityID: item.ID, Kind: collectible.Kind, Value: collectible.Value})

	item.Destroy()
}

func (s *CollisionSystem) handleStreetArt(world *ecs.World, player, wall *ecs.Entity, dt float64) {
	ctrl := components.GetPlayerController(player)
	art := components.GetStreetArt(wall)
	if ctrl == nil || art == nil {
		return
	}
	if !ctrl.Actions.Spray || ctrl.SprayPower <= 0 || art.Painted {
		return
	}

	art.Progress += PaintRate * dt
	ctrl.AddSprayPower(-PaintDrainRate * dt)

	if art.Progress < art.Required {
		return
	}

	art.Painted = true
	s.state.PaintedWalls++
	s.state.AddScore(world, PaintedWallReward)
	if sprite := components.GetSprite(wall); sprite != nil {
		sprite.Frame = "colored"
	}
	world.EmitEvent(SoundEvent{ID: SoundPainted})
	world.EmitEvent(PaintEvent{EntityID: wall.ID, Total: s.state.PaintedWalls})

	if s.achievements != nil {
		s.achievements.Evaluate(world)
	}
	s.log.Debug("wall painted", zap.Int("total", s.state.PaintedWalls))
}

// entityCenter returns the center of an entity's transform
func entityCenter(e *ecs.Entity) (x, y float64) {
	t := components.GetTransform(e)
	if t == nil {
		return 0, 0
	}
	return t.CenterX(), t.CenterY()
}
