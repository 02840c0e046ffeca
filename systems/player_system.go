package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// Player sprite frames
const (
	FrameIdle  = "idle"
	FrameRun   = "run"
	FrameJump  = "jump"
	FrameDuck  = "duck"
	FrameSpray = "spray"
)

var jumpFrames = []string{"jump_1", "jump_2", "jump_3"}

const (
	jumpFrameDuration   = 0.1
	invulnerableOpacity = 0.5
)

// Spray paint colors, one is picked per burst
var sprayPalette = []color.RGBA{
	{255, 64, 160, 255},
	{64, 224, 255, 255},
	{255, 220, 48, 255},
	{120, 255, 96, 255},
	{176, 96, 255, 255},
}

// PlayerSystem turns the player's action flags into movement, effects and
// sprite frames
type PlayerSystem struct {
	rng *rand.Rand
	// Last whole spray power reported to the UI
	lastSprayUnit int
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(rng *rand.Rand) *PlayerSystem {
	return &PlayerSystem{rng: rng, lastSprayUnit: -1}
}

// Update processes the player entity
func (s *PlayerSystem) Update(world *ecs.World, dt float64) {
	player := world.Entities.First(components.TagPlayer)
	if player == nil {
		return
	}
	ctrl := components.GetPlayerController(player)
	transform := components.GetTransform(player)
	velocity := components.GetVelocity(player)
	body := components.GetPhysics(player)
	if ctrl == nil || transform == nil || velocity == nil || body == nil {
		return
	}
	defer ctrl.ResetActions()

	health := components.GetHealth(player)
	if health != nil {
		health.Tick(dt)
	}

	ctrl.AddSprayPower(ctrl.SprayRegen * dt)

	if body.Grounded {
		ctrl.IsJumping = false
	}
	velocity.VX = ctrl.MoveSpeed

	if ctrl.Actions.Jump && body.Grounded && !ctrl.IsJumping {
		s.jump(world, player, ctrl, transform, velocity, body)
	}

	s.duck(player, ctrl)

	wasSpraying := ctrl.IsSpraying
	ctrl.IsSpraying = ctrl.Actions.Spray && ctrl.SprayPower > 0
	if ctrl.IsSpraying {
		tint := sprayPalette[s.rng.Intn(len(sprayPalette))]
		world.EmitEvent(EffectEvent{
			Kind: EffectSpray,
			X:    transform.X + transform.W,
			Y:    transform.CenterY(),
			Tint: tint,
		})
		if !wasSpraying {
			world.EmitEvent(SoundEvent{ID: SoundSpray})
		}
	}

	if unit := int(math.Floor(ctrl.SprayPower)); unit != s.lastSprayUnit {
		s.lastSprayUnit = unit
		world.EmitEvent(SprayEvent{Power: ctrl.SprayPower, Max: ctrl.MaxSprayPower})
	}

	if sprite := components.GetSprite(player); sprite != nil {
		s.updateSprite(player, ctrl, velocity, health, sprite)
	}
}

func (s *PlayerSystem) jump(world *ecs.World, player *ecs.Entity, ctrl *components.PlayerControllerComponent,
	transform *components.TransformComponent, velocity *components.VelocityComponent, body *components.PhysicsComponent) {
	velocity.VY = -ctrl.JumpForce
	body.Grounded = false
	body.OnGround = false
	ctrl.IsJumping = true

	if anim := components.GetAnimation(player); anim != nil {
		anim.Play(jumpFrames, jumpFrameDuration, false, func() {
			anim.Frames = nil
		})
	}

	world.EmitEvent(EffectEvent{Kind: EffectJump, X: transform.CenterX(), Y: transform.Bottom()})
	world.EmitEvent(SoundEvent{ID: SoundJump})
}

// duck shrinks the collider to the ducking height while held
func (s *PlayerSystem) duck(player *ecs.Entity, ctrl *components.PlayerControllerComponent) {
	collider := components.GetCollider(player)
	if collider == nil {
		return
	}
	switch {
	case ctrl.Actions.Duck && !ctrl.IsDucking:
		ctrl.IsDucking = true
		collider.H = ctrl.DuckHeight
		collider.OffsetY = ctrl.StandHeight - ctrl.DuckHeight
	case !ctrl.Actions.Duck && ctrl.IsDucking:
		ctrl.IsDucking = false
		collider.H = ctrl.StandHeight
		collider.OffsetY = 0
	}
}

// updateSprite picks the frame: animation override, jump, duck, spray, then run
func (s *PlayerSystem) updateSprite(player *ecs.Entity, ctrl *components.PlayerControllerComponent,
	velocity *components.VelocityComponent, health *components.HealthComponent, sprite *components.SpriteComponent) {
	if health != nil && health.Invulnerable {
		sprite.Opacity = invulnerableOpacity
	} else {
		sprite.Opacity = 1
	}

	if anim := components.GetAnimation(player); anim != nil && anim.Playing && len(anim.Frames) > 0 {
		return
	}

	switch {
	case ctrl.IsJumping:
		sprite.Frame = FrameJump
	case ctrl.IsDucking:
		sprite.Frame = FrameDuck
	case ctrl.IsSpraying:
		sprite.Frame = FrameSpray
	case velocity.VX == 0:
		sprite.Frame = FrameIdle
	default:
		sprite.Frame = FrameRun
	}
}
