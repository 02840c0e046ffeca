package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/spawners"
)

// effectPattern fixes the count and kinematics of one effect kind. Angles are
// in radians with y pointing down.
type effectPattern struct {
	Count              int
	MinAngle, MaxAngle float64
	MinSpeed, MaxSpeed float64
	Lifetime           float64
	GravityScale       float64
	Size               float64
	Color              color.RGBA
}

var effectPatterns = map[EffectKind]effectPattern{
	EffectJump: {
		Count: 8, MinAngle: 0, MaxAngle: 2 * math.Pi,
		MinSpeed: 60, MaxSpeed: 140, Lifetime: 0.4, GravityScale: 0.5, Size: 4,
		Color: color.RGBA{230, 230, 230, 255},
	},
	// Dust kicked along the ground, mostly downward so it bounces off the ground line
	EffectLanding: {
		Count: 12, MinAngle: 0, MaxAngle: math.Pi,
		MinSpeed: 40, MaxSpeed: 120, Lifetime: 0.5, GravityScale: 0.3, Size: 5,
		Color: color.RGBA{150, 140, 120, 255},
	},
	EffectSpray: {
		Count: 5, MinAngle: -0.25, MaxAngle: 0.25,
		MinSpeed: 200, MaxSpeed: 320, Lifetime: 0.35, GravityScale: 0.2, Size: 3,
		Color: color.RGBA{255, 64, 160, 255},
	},
	EffectCrash: {
		Count: 15, MinAngle: 0, MaxAngle: 2 * math.Pi,
		MinSpeed: 120, MaxSpeed: 300, Lifetime: 0.6, GravityScale: 1, Size: 5,
		Color: color.RGBA{255, 120, 40, 255},
	},
	EffectCollect: {
		Count: 10, MinAngle: 0, MaxAngle: 2 * math.Pi,
		MinSpeed: 80, MaxSpeed: 180, Lifetime: 0.5, GravityScale: 0, Size: 4,
		Color: color.RGBA{255, 215, 0, 255},
	},
}

// EffectsSystem spawns particle bursts for EffectEvents. Requests are queued
// by the event handler and spawned during Update. Only events emitted between
// Initialize and Close are seen.
type EffectsSystem struct {
	spawner *spawners.EntitySpawner
	rng     *rand.Rand
	pending []EffectEvent
	subID   ecs.SubscriptionID
	world   *ecs.World
}

// NewEffectsSystem creates a new effects system
func NewEffectsSystem(spawner *spawners.EntitySpawner, rng *rand.Rand) *EffectsSystem {
	return &EffectsSystem{
		spawner: spawner,
		rng:     rng,
	}
}

// Initialize subscribes to effect requests
func (s *EffectsSystem) Initialize(world *ecs.World) {
	if s.world != nil {
		return
	}
	s.world = world
	s.subID = world.GetEventManager().Subscribe(EventEffect, func(event ecs.Event) {
		s.pending = append(s.pending, event.(EffectEvent))
	})
}

// Close drops the event subscription
func (s *EffectsSystem) Close() {
	if s.world == nil {
		return
	}
	s.world.GetEventManager().Unsubscribe(EventEffect, s.subID)
	s.world = nil
	s.pending = nil
}

// Update spawns every queued effect
func (s *EffectsSystem) Update(world *ecs.World, dt float64) {
	// Spawning never emits effects, so the queue cannot grow while draining
	pending := s.pending
	s.pending = nil
	for _, req := range pending {
		s.Spawn(req.Kind, req.X, req.Y, req.Tint)
	}
}

// Spawn creates the particles of one effect and returns how many it made.
// A nil tint keeps the pattern color.
func (s *EffectsSystem) Spawn(kind EffectKind, x, y float64, tint color.Color) int {
	pattern, ok := effectPatterns[kind]
	if !ok {
		return 0
	}
	var c color.Color = pattern.Color
	if tint != nil {
		c = tint
	}

	for i := 0; i < pattern.Count; i++ {
		angle := pattern.MinAngle + s.rng.Float64()*(pattern.MaxAngle-pattern.MinAngle)
		speed := pattern.MinSpeed + s.rng.Float64()*(pattern.MaxSpeed-pattern.MinSpeed)
		// Lifetimes vary by up to a quarter so bursts do not vanish in one frame
		lifetime := pattern.Lifetime * (0.75 + s.rng.Float64()*0.25)

		s.spawner.CreateParticle(spawners.ParticleSpec{
			X:            x,
			Y:            y,
			VX:           math.Cos(angle) * speed,
			VY:           math.Sin(angle) * speed,
			Size:         pattern.Size,
			Lifetime:     lifetime,
			GravityScale: pattern.GravityScale,
			Color:        c,
			FadeOut:      true,
		})
	}
	return pattern.Count
}
