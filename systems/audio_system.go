package systems

import (
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// SoundPlayer plays a sound by id. Unknown ids are silently ignored.
type SoundPlayer interface {
	PlaySound(id string)
}

// AudioSystem forwards SoundEvents to a SoundPlayer
type AudioSystem struct {
	player SoundPlayer
	muted  bool
	subID  ecs.SubscriptionID
	world  *ecs.World
}

// NewAudioSystem creates an audio bridge. A nil player makes it a no-op.
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// Initialize subscribes to sound events
func (s *AudioSystem) Initialize(world *ecs.World) {
	if s.world != nil {
		return
	}
	s.world = world
	s.subID = world.GetEventManager().Subscribe(EventSound, func(event ecs.Event) {
		if s.player == nil || s.muted {
			return
		}
		s.player.PlaySound(event.(SoundEvent).ID)
	})
}

// Close drops the event subscription
func (s *AudioSystem) Close() {
	if s.world == nil {
		return
	}
	s.world.GetEventManager().Unsubscribe(EventSound, s.subID)
	s.world = nil
}

// SetMuted turns playback off or back on
func (s *AudioSystem) SetMuted(muted bool) {
	s.muted = muted
}

// Muted reports whether playback is off
func (s *AudioSystem) Muted() bool {
	return s.muted
}
