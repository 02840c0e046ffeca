package systems

import (
	"math/rand"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// CameraSystem keeps the camera on its target and applies screen shake.
// It runs after world generation rather than in the system pipeline.
type CameraSystem struct {
	rng   *rand.Rand
	subID ecs.SubscriptionID
	world *ecs.World
}

// NewCameraSystem creates a new camera system
func NewCameraSystem(rng *rand.Rand) *CameraSystem {
	return &CameraSystem{rng: rng}
}

// Initialize subscribes to shake impulses
func (s *CameraSystem) Initialize(world *ecs.World) {
	if s.world != nil {
		return
	}
	s.world = world
	s.subID = world.GetEventManager().Subscribe(EventShake, func(event ecs.Event) {
		shake := event.(ShakeEvent)
		for _, entity := range world.Entities.QueryByTag(components.TagCamera) {
			if camera := components.GetCamera(entity); camera != nil {
				camera.Shake(shake.Magnitude, shake.Duration)
			}
		}
	})
}

// Close drops the event subscription
func (s *CameraSystem) Close() {
	if s.world == nil {
		return
	}
	s.world.GetEventManager().Unsubscribe(EventShake, s.subID)
	s.world = nil
}

// Update moves every camera to hold its target at LeadX and decays shake
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Entities.QueryByTag(components.TagCamera) {
		camera := components.GetCamera(entity)
		if camera == nil {
			continue
		}

		if target := world.Entities.Get(camera.Target); target != nil {
			if transform := components.GetTransform(target); transform != nil {
				camera.X = transform.X - camera.LeadX
			}
		}

		s.updateShake(camera, dt)
	}
}

func (s *CameraSystem) updateShake(camera *components.CameraComponent, dt float64) {
	if camera.ShakeTime <= 0 {
		camera.ShakeX, camera.ShakeY = 0, 0
		camera.ShakeMagnitude = 0
		return
	}
	camera.ShakeTime -= dt
	camera.ShakeX = (s.rng.Float64()*2 - 1) * camera.ShakeMagnitude
	camera.ShakeY = (s.rng.Float64()*2 - 1) * camera.ShakeMagnitude
}

// Offset returns the draw offset of the first camera, shake included
func (s *CameraSystem) Offset(world *ecs.World) (x, y float64) {
	entity := world.Entities.First(components.TagCamera)
	if entity == nil {
		return 0, 0
	}
	camera := components.GetCamera(entity)
	if camera == nil {
		return 0, 0
	}
	return camera.X + camera.ShakeX, camera.Y + camera.ShakeY
}
