package systems

import (
	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// AnimationSystem advances frame timers and pushes frames into sprites
type AnimationSystem struct{}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances every playing animation
func (s *AnimationSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.Query(components.Animation, components.Sprite) {
		anim := components.GetAnimation(entity)
		if !anim.Playing || len(anim.Frames) == 0 {
			continue
		}

		s.advance(anim, dt)

		if frame := anim.CurrentFrame(); frame != "" {
			components.GetSprite(entity).Frame = frame
		}
	}
}

func (s *AnimationSystem) advance(anim *components.AnimationComponent, dt float64) {
	if anim.FrameDuration <= 0 {
		return
	}
	anim.Elapsed += dt
	for anim.Elapsed >= anim.FrameDuration {
		anim.Elapsed -= anim.FrameDuration
		anim.Index++
		if anim.Index < len(anim.Frames) {
			continue
		}
		if anim.Loop {
			anim.Index = 0
			continue
		}

		anim.Index = len(anim.Frames) - 1
		anim.Playing = false
		anim.Elapsed = 0
		if done := anim.OnComplete; done != nil {
			anim.OnComplete = nil
			done()
		}
		return
	}
}
