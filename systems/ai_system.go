package systems

import (
	"math"
	"math/rand"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// AI timing constants
const (
	PatrolMoveLimit   = 4.0 // Seconds a patrol moves before it must turn
	PatrolTurnPause   = 0.5
	GuardAlertHold    = 1.0
	GuardGiveUpFactor = 1.5 // Multiple of GuardRadius past which a guard returns home
	GuardArriveRadius = 10.0
)

// AISystem runs the patrol, chase and guard state machines
type AISystem struct {
	rng *rand.Rand
}

// NewAISystem creates a new AI system
func NewAISystem(rng *rand.Rand) *AISystem {
	return &AISystem{rng: rng}
}

// aiBody groups the components an AI step reads and writes
type aiBody struct {
	ai        *components.AIControllerComponent
	transform *components.TransformComponent
	velocity  *components.VelocityComponent
}

// Update processes AI behavior for entities with AI components
func (s *AISystem) Update(world *ecs.World, dt float64) {
	var target *components.TransformComponent
	if player := world.Entities.First(components.TagPlayer); player != nil {
		target = components.GetTransform(player)
	}

	for _, entity := range world.Query(components.AIController, components.Transform, components.Velocity) {
		body := aiBody{
			ai:        components.GetAIController(entity),
			transform: components.GetTransform(entity),
			velocity:  components.GetVelocity(entity),
		}
		body.ai.Timer += dt

		switch body.ai.Behavior {
		case components.BehaviorPatrol:
			s.updatePatrol(body)
		case components.BehaviorChase:
			s.updateChase(body, target)
		case components.BehaviorGuard:
			s.updateGuard(body, target)
		}

		if sprite := components.GetSprite(entity); sprite != nil {
			sprite.FlipX = body.ai.Direction < 0
		}
	}
}

func (s *AISystem) updatePatrol(b aiBody) {
	ai := b.ai
	cfg := ai.Patrol

	switch ai.State {
	case components.AIStateIdle:
		b.velocity.VX = 0
		if ai.Timer >= cfg.IdleDelay {
			ai.Direction = 1
			if s.rng.Intn(2) == 0 {
				ai.Direction = -1
			}
			ai.SetState(components.AIStateMoving)
			b.velocity.VX = ai.Direction * cfg.Speed
		}

	case components.AIStateMoving:
		// Distance travelled past the start point in the current direction
		past := (b.transform.X - ai.HomeX) * ai.Direction
		if past > cfg.Range || ai.Timer >= PatrolMoveLimit {
			ai.SetState(components.AIStateTurning)
			b.velocity.VX = 0
			return
		}
		b.velocity.VX = ai.Direction * cfg.Speed

	case components.AIStateTurning:
		b.velocity.VX = 0
		if ai.Timer >= PatrolTurnPause {
			ai.Direction = -ai.Direction
			ai.SetState(components.AIStateMoving)
			b.velocity.VX = ai.Direction * cfg.Speed
		}

	default:
		ai.SetState(components.AIStateIdle)
	}
}

// updateChase follows the player while in range. There is no hysteresis band,
// so an entity sitting exactly on the range boundary flips between states.
func (s *AISystem) updateChase(b aiBody, target *components.TransformComponent) {
	ai := b.ai
	if target != nil && centerDistance(b.transform, target) < ai.Chase.Range {
		if ai.State != components.AIStateChasing {
			ai.SetState(components.AIStateChasing)
		}
		s.steer(b, target.CenterX(), target.CenterY(), ai.Chase.Speed)
		return
	}

	if ai.State != components.AIStateIdle {
		ai.SetState(components.AIStateIdle)
	}
	s.halt(b)
}

func (s *AISystem) updateGuard(b aiBody, target *components.TransformComponent) {
	ai := b.ai
	cfg := ai.Guard

	distance := math.Inf(1)
	if target != nil {
		distance = centerDistance(b.transform, target)
	}

	switch ai.State {
	case components.AIStateIdle:
		s.halt(b)
		if distance < cfg.AlertRadius {
			ai.SetState(components.AIStateAlert)
		}

	case components.AIStateAlert:
		s.halt(b)
		if target != nil {
			ai.Direction = sign(target.CenterX() - b.transform.CenterX())
		}
		if ai.Timer >= GuardAlertHold {
			if distance < cfg.GuardRadius {
				ai.SetState(components.AIStatePursuing)
			} else {
				ai.SetState(components.AIStateIdle)
			}
		}

	case components.AIStatePursuing:
		if target == nil || distance > cfg.GuardRadius*GuardGiveUpFactor {
			ai.Target = &components.AIPoint{X: ai.HomeX, Y: ai.HomeY}
			ai.SetState(components.AIStateReturning)
			s.halt(b)
			return
		}
		s.steer(b, target.CenterX(), target.CenterY(), cfg.Speed)

	case components.AIStateReturning:
		if ai.Target == nil {
			ai.Target = &components.AIPoint{X: ai.HomeX, Y: ai.HomeY}
		}
		home := *ai.Target
		if math.Hypot(home.X-b.transform.X, home.Y-b.transform.Y) < GuardArriveRadius {
			ai.Target = nil
			ai.SetState(components.AIStateIdle)
			b.velocity.VX, b.velocity.VY = 0, 0
			return
		}
		// Steer the top-left corner toward the stored spawn point
		s.steer(b, home.X+b.transform.W/2, home.Y+b.transform.H/2, cfg.Speed)

	default:
		ai.SetState(components.AIStateIdle)
	}
}

// steer moves toward a point at constant speed. Only entities that ignore
// gravity steer vertically.
func (s *AISystem) steer(b aiBody, x, y, speed float64) {
	dx := x - b.transform.CenterX()
	dy := y - b.transform.CenterY()
	b.ai.Direction = sign(dx)

	if b.velocity.GravityScale != 0 {
		b.velocity.VX = b.ai.Direction * speed
		return
	}

	length := math.Hypot(dx, dy)
	if length == 0 {
		b.velocity.VX, b.velocity.VY = 0, 0
		return
	}
	b.velocity.VX = dx / length * speed
	b.velocity.VY = dy / length * speed
}

func (s *AISystem) halt(b aiBody) {
	b.velocity.VX = 0
	if b.velocity.GravityScale == 0 {
		b.velocity.VY = 0
	}
}

func centerDistance(a, b *components.TransformComponent) float64 {
	return math.Hypot(b.CenterX()-a.CenterX(), b.CenterY()-a.CenterY())
}

// sign returns -1 for negative values and 1 otherwise
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
